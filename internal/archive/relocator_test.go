package archive_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scansort/internal/archive"
	"scansort/internal/classify"
	"scansort/internal/logging"
	"scansort/internal/testsupport"
)

func listSource(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read source dir: %v", err)
	}
	return entries
}

func TestProcessBatchArchivesValidFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	rel := archive.NewRelocator(cfg, logging.NewNop())

	src := filepath.Join(cfg.Paths.SourceDir, "taxes_05032022.pdf")
	testsupport.WriteText(t, src, "scan bytes")

	entries := listSource(t, cfg.Paths.SourceDir)
	if err := rel.ProcessBatch(context.Background(), entries, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir); err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}

	dest := filepath.Join(cfg.Paths.ArchiveDir, "2022", "03", "05", "taxes.pdf")
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read archived file: %v", err)
	}
	if string(got) != "scan bytes" {
		t.Fatalf("archived content mismatch: %q", got)
	}
	if _, err := os.Stat(src); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected source to be removed, stat err=%v", err)
	}
}

func TestProcessBatchEmptyListingIsNoop(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	rel := archive.NewRelocator(cfg, logging.NewNop())

	if err := rel.ProcessBatch(context.Background(), nil, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir); err != nil {
		t.Fatalf("expected no-op for empty listing, got %v", err)
	}
}

func TestProcessBatchContinuesPastFailures(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	rel := archive.NewRelocator(cfg, logging.NewNop())

	valid := filepath.Join(cfg.Paths.SourceDir, "letter_01102024.txt")
	invalid := filepath.Join(cfg.Paths.SourceDir, "broken.txt")
	testsupport.WriteText(t, valid, "valid")
	testsupport.WriteText(t, invalid, "invalid")

	entries := listSource(t, cfg.Paths.SourceDir)
	err := rel.ProcessBatch(context.Background(), entries, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir)
	if err == nil {
		t.Fatal("expected batch error for malformed sibling")
	}
	if !errors.Is(err, classify.ErrMissingSeparator) {
		t.Fatalf("expected ErrMissingSeparator in joined error, got %v", err)
	}

	// The valid sibling must be archived despite the failure.
	dest := filepath.Join(cfg.Paths.ArchiveDir, "2024", "10", "01", "letter.txt")
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("expected valid sibling to be archived: %v", err)
	}
	if _, err := os.Stat(valid); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected valid source to be removed, stat err=%v", err)
	}
	// The malformed file stays in the inbox for the next pass.
	if _, err := os.Stat(invalid); err != nil {
		t.Fatalf("expected malformed file to remain: %v", err)
	}
}

func TestProcessReportsPerEntryOutcomes(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	rel := archive.NewRelocator(cfg, logging.NewNop())

	testsupport.WriteText(t, filepath.Join(cfg.Paths.SourceDir, "a_01102024.txt"), "a")
	testsupport.WriteText(t, filepath.Join(cfg.Paths.SourceDir, "b.txt"), "b")

	entries := listSource(t, cfg.Paths.SourceDir)
	outcomes := rel.Process(context.Background(), entries, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir)
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}

	byName := map[string]archive.Outcome{}
	for _, o := range outcomes {
		byName[o.Name] = o
	}

	ok := byName["a_01102024.txt"]
	if !ok.Archived() {
		t.Fatalf("expected a_01102024.txt archived, err=%v", ok.Err)
	}
	if want := filepath.Join(cfg.Paths.ArchiveDir, "2024", "10", "01", "a.txt"); ok.Destination != want {
		t.Fatalf("unexpected destination: got %q want %q", ok.Destination, want)
	}

	bad := byName["b.txt"]
	if bad.Archived() {
		t.Fatal("expected b.txt to fail classification")
	}
	if bad.Destination != "" {
		t.Fatalf("expected empty destination for classification failure, got %q", bad.Destination)
	}
}

func TestProcessBatchOverwritesExistingArchive(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	rel := archive.NewRelocator(cfg, logging.NewNop())
	src := filepath.Join(cfg.Paths.SourceDir, "report_01102024.txt")
	dest := filepath.Join(cfg.Paths.ArchiveDir, "2024", "10", "01", "report.txt")

	testsupport.WriteText(t, src, "first pass")
	entries := listSource(t, cfg.Paths.SourceDir)
	if err := rel.ProcessBatch(context.Background(), entries, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir); err != nil {
		t.Fatalf("first pass: %v", err)
	}

	// A file with the same name showing up later silently replaces the
	// earlier archive entry.
	testsupport.WriteText(t, src, "second pass")
	entries = listSource(t, cfg.Paths.SourceDir)
	if err := rel.ProcessBatch(context.Background(), entries, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir); err != nil {
		t.Fatalf("second pass: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read archived file: %v", err)
	}
	if string(got) != "second pass" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestProcessSkipsDirectories(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	rel := archive.NewRelocator(cfg, logging.NewNop())

	if err := os.MkdirAll(filepath.Join(cfg.Paths.SourceDir, "subdir"), 0o755); err != nil {
		t.Fatalf("mkdir subdir: %v", err)
	}
	testsupport.WriteText(t, filepath.Join(cfg.Paths.SourceDir, "a_01102024.txt"), "a")

	entries := listSource(t, cfg.Paths.SourceDir)
	outcomes := rel.Process(context.Background(), entries, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir)
	if len(outcomes) != 1 {
		t.Fatalf("expected directory entry to be skipped, got %d outcomes", len(outcomes))
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.SourceDir, "subdir")); err != nil {
		t.Fatalf("expected subdir to remain: %v", err)
	}
}

func TestProcessBatchReportsIOFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	rel := archive.NewRelocator(cfg, logging.NewNop())

	src := filepath.Join(cfg.Paths.SourceDir, "report_01102024.txt")
	testsupport.WriteText(t, src, "report")
	// Block the destination directory chain with a plain file.
	testsupport.WriteText(t, filepath.Join(cfg.Paths.ArchiveDir, "2024"), "in the way")

	entries := listSource(t, cfg.Paths.SourceDir)
	err := rel.ProcessBatch(context.Background(), entries, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir)
	if err == nil {
		t.Fatal("expected I/O failure")
	}
	if classify.IsClassification(err) {
		t.Fatalf("expected I/O error, got classification error %v", err)
	}
	// A failed relocation leaves the source untouched for the next pass.
	if _, statErr := os.Stat(src); statErr != nil {
		t.Fatalf("expected source to remain after failure: %v", statErr)
	}
}

func TestProcessReportsMissingEntryAsIOFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	rel := archive.NewRelocator(cfg, logging.NewNop())

	gone := filepath.Join(cfg.Paths.SourceDir, "gone_01102024.txt")
	testsupport.WriteText(t, gone, "gone")

	// Capture the listing, then remove the file to simulate a race with
	// another consumer of the inbox.
	entries := listSource(t, cfg.Paths.SourceDir)
	if err := os.Remove(gone); err != nil {
		t.Fatalf("remove staged file: %v", err)
	}

	outcomes := rel.Process(context.Background(), entries, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir)
	if len(outcomes) != 1 {
		t.Fatalf("expected one outcome for the listed entry, got %d", len(outcomes))
	}
	if outcomes[0].Err == nil {
		t.Fatal("expected an I/O failure for the missing file")
	}
	// A missing file is an ordinary I/O failure, not a rejection of the name.
	if classify.IsClassification(outcomes[0].Err) {
		t.Fatalf("expected I/O error, got classification error %v", outcomes[0].Err)
	}
	if !errors.Is(outcomes[0].Err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", outcomes[0].Err)
	}

	if err := rel.ProcessBatch(context.Background(), entries, cfg.Paths.SourceDir, cfg.Paths.ArchiveDir); err == nil {
		t.Fatal("expected batch error for the missing file")
	}
}
