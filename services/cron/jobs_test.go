package cron

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSweepUploadDir(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().Add(-48 * time.Hour)
	fresh := time.Now()

	orphanOld := writeFile(t, dir, "100-orphan.pdf", old)
	orphanFresh := writeFile(t, dir, "200-orphan.pdf", fresh)
	referencedOld := writeFile(t, dir, "300-kept.pdf", old)

	referenced := map[string]bool{"300-kept.pdf": true}
	cutoff := time.Now().Add(-24 * time.Hour)

	removed, err := sweepUploadDir(dir, referenced, cutoff)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("removed %d files, want 1", removed)
	}

	if _, err := os.Stat(orphanOld); !os.IsNotExist(err) {
		t.Error("old orphan should have been removed")
	}
	if _, err := os.Stat(orphanFresh); err != nil {
		t.Error("fresh orphan inside the grace window should survive")
	}
	if _, err := os.Stat(referencedOld); err != nil {
		t.Error("referenced file should survive regardless of age")
	}
}

func TestSweepUploadDirEmptyDir(t *testing.T) {
	removed, err := sweepUploadDir(t.TempDir(), map[string]bool{}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if removed != 0 {
		t.Errorf("removed %d files from an empty dir", removed)
	}
}
