package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scansort/internal/archive"
	"scansort/internal/logging"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Run a single batch pass over the inbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			entries, err := os.ReadDir(cfg.Paths.SourceDir)
			if err != nil {
				return fmt.Errorf("read source directory: %w", err)
			}

			out := cmd.OutOrStdout()
			relocator := archive.NewRelocator(cfg, logging.NewNop())
			outcomes := relocator.Process(cmd.Context(), entries, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir)
			if len(outcomes) == 0 {
				fmt.Fprintln(out, "Inbox is empty")
				return nil
			}

			failed := 0
			rows := make([][]string, 0, len(outcomes))
			for _, outcome := range outcomes {
				status := "archived"
				if outcome.Err != nil {
					failed++
					status = outcome.Err.Error()
				}
				rows = append(rows, []string{outcome.Name, outcome.Destination, status})
			}
			fmt.Fprintln(out, renderTable([]string{"File", "Destination", "Status"}, rows))

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(outcomes))
			}
			return nil
		},
	}
}
