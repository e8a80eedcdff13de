package main

import (
	"path/filepath"
	"testing"

	"scansort/internal/logging"
	"scansort/internal/testsupport"
)

func TestBuildDaemon(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	d, err := buildDaemon(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("buildDaemon: %v", err)
	}

	expected := filepath.Join(cfg.Paths.LogDir, "scansortd.lock")
	if got := d.LockPath(); got != expected {
		t.Fatalf("expected lock path %q, got %q", expected, got)
	}
}

func TestBuildDaemonRequiresConfig(t *testing.T) {
	if _, err := buildDaemon(nil, logging.NewNop()); err == nil {
		t.Fatal("expected error for nil config")
	}
}
