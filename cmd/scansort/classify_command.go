package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scansort/internal/classify"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <filename>...",
		Short: "Preview where filenames would be archived without touching any file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			classifier := classify.New(cfg.Rules)
			failed := 0
			rows := make([][]string, 0, len(args))
			for _, name := range args {
				target, err := classifier.Classify(name, cfg.Paths.ArchiveDir)
				if err != nil {
					failed++
					rows = append(rows, []string{name, "", err.Error()})
					continue
				}
				rows = append(rows, []string{name, target.Destination, "ok"})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"File", "Destination", "Status"}, rows))

			if failed > 0 {
				return fmt.Errorf("%d of %d filenames are not classifiable", failed, len(args))
			}
			return nil
		},
	}
}
