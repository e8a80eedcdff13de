package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"

	"scansort/internal/config"
	"scansort/internal/logging"
)

// Daemon runs the poller under a single-instance file lock.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	poller *Poller

	lockPath string
	lock     *flock.Flock
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, poller *Poller, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || poller == nil || logger == nil {
		return nil, errors.New("daemon requires config, poller, and logger")
	}

	lockPath := filepath.Join(cfg.Paths.LogDir, "scansortd.lock")
	return &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		poller:   poller,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// LockPath returns the path of the single-instance lock file.
func (d *Daemon) LockPath() string {
	return d.lockPath
}

// Run acquires the daemon lock and blocks in the poll loop until ctx is
// cancelled. It returns an error when another instance already holds the
// lock.
func (d *Daemon) Run(ctx context.Context) error {
	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another scansort daemon instance is already running")
	}
	defer func() {
		if err := d.lock.Unlock(); err != nil {
			d.logger.Warn("failed to release daemon lock", logging.Error(err))
		}
	}()

	d.logger.Info("scansort daemon started", logging.String("lock", d.lockPath))
	err = d.poller.Run(ctx)
	d.logger.Info("scansort daemon stopped")
	return err
}
