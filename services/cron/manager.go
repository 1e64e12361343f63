package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/gecampus/apply-api/database"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron      *cron.Cron
	store     database.Storage
	uploadDir string
}

// NewCronManager creates a new cron manager
func NewCronManager(store database.Storage, uploadDir string) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:      c,
		store:     store,
		uploadDir: uploadDir,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs and waits for running ones to finish
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Every hour: remove uploaded resumes no application row references
	_, err := m.cron.AddFunc("0 0 * * * *", func() {
		m.logJobStart("sweep_orphaned_uploads")
		m.SweepOrphanedUploads()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

func (m *CronManager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s", jobName)
}

func (m *CronManager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Job %s failed: %v", jobName, err)
}
