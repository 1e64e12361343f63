package cron

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// orphanGracePeriod is how long an unreferenced upload may sit on disk
// before the sweeper reclaims it. Resumes are written before field
// validation finishes, so a rejected submission leaves its file behind; the
// grace period keeps the sweeper from racing an in-flight submission.
const orphanGracePeriod = 24 * time.Hour

// SweepOrphanedUploads deletes uploaded resume files that no application
// row references and that are past the grace period.
func (m *CronManager) SweepOrphanedUploads() {
	jobName := "sweep_orphaned_uploads"

	paths, err := m.store.ListResumePaths()
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[filepath.Base(p)] = true
	}

	removed, err := sweepUploadDir(m.uploadDir, referenced, time.Now().Add(-orphanGracePeriod))
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	log.Printf("[CRON] Job %s removed %d orphaned file(s)", jobName, removed)
}

// sweepUploadDir removes unreferenced files whose modification time is
// before cutoff. Split out from the job so it can be tested directly.
func sweepUploadDir(dir string, referenced map[string]bool, cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			log.Printf("[CRON] Failed to remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	return removed, nil
}
