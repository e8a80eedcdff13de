package main

import (
	"errors"
	"log/slog"

	"scansort/internal/archive"
	"scansort/internal/config"
	"scansort/internal/daemon"
)

// buildDaemon wires the archiving pipeline for the daemon process.
func buildDaemon(cfg *config.Config, logger *slog.Logger) (*daemon.Daemon, error) {
	if cfg == nil {
		return nil, errors.New("daemon requires configuration")
	}
	relocator := archive.NewRelocator(cfg, logger)
	poller := daemon.NewPoller(cfg, relocator, logger)
	return daemon.New(cfg, poller, logger)
}
