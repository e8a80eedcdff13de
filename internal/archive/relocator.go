package archive

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"scansort/internal/classify"
	"scansort/internal/config"
	"scansort/internal/fileutil"
	"scansort/internal/logging"
)

// Outcome records the result of one relocation attempt within a batch.
type Outcome struct {
	// Name is the inbox filename.
	Name string
	// Destination is the computed archive path. Empty when classification
	// failed before a destination existed.
	Destination string
	// Err is nil when the file was archived.
	Err error
}

// Archived reports whether the entry completed the full relocation: the
// source no longer exists and the destination holds its bytes.
func (o Outcome) Archived() bool { return o.Err == nil }

// Relocator applies the classification pipeline to inbox listings and moves
// each classifiable file into the archive tree.
type Relocator struct {
	cfg        *config.Config
	classifier *classify.Classifier
	logger     *slog.Logger
}

// NewRelocator constructs a relocator using the configured naming rules.
func NewRelocator(cfg *config.Config, logger *slog.Logger) *Relocator {
	return &Relocator{
		cfg:        cfg,
		classifier: classify.New(cfg.Rules),
		logger:     logging.NewComponentLogger(logger, "relocator"),
	}
}

// Process relocates every regular file in entries and returns one outcome
// per attempt, in listing order. Directory entries are skipped. Entries are
// processed independently: a failure never stops the remaining entries. A
// file that disappeared after the listing fails like any other I/O error;
// the next pass sees the current inbox state.
func (r *Relocator) Process(ctx context.Context, entries []fs.DirEntry, source, target string) []Outcome {
	logger := logging.WithContext(ctx, r.logger)

	outcomes := make([]Outcome, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			logger.Debug("skipping directory entry", logging.String(logging.FieldFile, name))
			continue
		}

		destination, err := r.relocate(filepath.Join(source, name), target)
		outcomes = append(outcomes, Outcome{Name: name, Destination: destination, Err: err})
		if err != nil {
			logger.Warn(
				"relocation failed",
				logging.String(logging.FieldFile, name),
				logging.Bool("permanent", classify.IsClassification(err)),
				logging.Error(err),
			)
			continue
		}
		logger.Info(
			"archived scan",
			logging.String(logging.FieldFile, name),
			logging.String(logging.FieldDestination, destination),
		)
	}
	return outcomes
}

// ProcessBatch runs Process over one listing snapshot and folds the
// per-entry failures into a single joined error. A nil return means every
// entry in the batch was archived (or the listing was empty).
func (r *Relocator) ProcessBatch(ctx context.Context, entries []fs.DirEntry, source, target string) error {
	if len(entries) == 0 {
		return nil
	}
	var failures []error
	for _, outcome := range r.Process(ctx, entries, source, target) {
		if outcome.Err != nil {
			failures = append(failures, outcome.Err)
		}
	}
	return errors.Join(failures...)
}

// relocate moves a single file: classify, ensure the destination directory
// chain, copy with verification, remove the source. A failed step leaves the
// source in place; already-created directories are not rolled back.
func (r *Relocator) relocate(src, target string) (string, error) {
	t, err := r.classifier.Classify(src, target)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(t.Destination), 0o755); err != nil {
		return t.Destination, fmt.Errorf("create archive directory: %w", err)
	}
	if err := fileutil.CopyFileVerified(src, t.Destination); err != nil {
		return t.Destination, fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}
	if err := os.Remove(src); err != nil {
		return t.Destination, fmt.Errorf("remove %s: %w", filepath.Base(src), err)
	}
	return t.Destination, nil
}
