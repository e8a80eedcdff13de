package daemon

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"scansort/internal/archive"
	"scansort/internal/config"
	"scansort/internal/logging"
)

// Poller repeatedly applies the relocation pipeline to inbox listings.
type Poller struct {
	cfg       *config.Config
	relocator *archive.Relocator
	logger    *slog.Logger
	interval  time.Duration
}

// NewPoller constructs a poller around the given relocator.
func NewPoller(cfg *config.Config, relocator *archive.Relocator, logger *slog.Logger) *Poller {
	return &Poller{
		cfg:       cfg,
		relocator: relocator,
		logger:    logging.NewComponentLogger(logger, "poller"),
		interval:  time.Duration(cfg.Workflow.PollInterval) * time.Second,
	}
}

// Run executes batch passes until ctx is cancelled. Pass failures are logged
// and never terminate the loop; cancellation returns nil.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info(
		"polling inbox",
		logging.String("source", p.cfg.Paths.SourceDir),
		logging.String("archive", p.cfg.Paths.ArchiveDir),
		logging.Duration("interval", p.interval),
	)
	for {
		_ = p.RunOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(p.interval):
		}
	}
}

// RunOnce performs a single batch pass over the current inbox listing. A
// failure to read the inbox skips the pass; per-entry failures surface in
// the returned error after every entry was attempted.
func (p *Poller) RunOnce(ctx context.Context) error {
	ctx = logging.WithPassID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, p.logger)

	entries, err := os.ReadDir(p.cfg.Paths.SourceDir)
	if err != nil {
		logger.Error("failed to read source directory", logging.Error(err))
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	logger.Debug("starting batch pass", logging.Int("entries", len(entries)))
	if err := p.relocator.ProcessBatch(ctx, entries, p.cfg.Paths.SourceDir, p.cfg.Paths.ArchiveDir); err != nil {
		logger.Warn("batch pass completed with failures", logging.Error(err))
		return err
	}
	return nil
}
