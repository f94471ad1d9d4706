package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronManager owns the background maintenance schedule.
type CronManager struct {
	cron *cron.Cron
	db   *gorm.DB
}

func NewCronManager(db *gorm.DB) *CronManager {
	return &CronManager{
		cron: cron.New(cron.WithSeconds()),
		db:   db,
	}
}

// Start registers all jobs and kicks off the scheduler.
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started")
	return nil
}

// Stop halts the scheduler and waits for running jobs to finish.
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

func (m *CronManager) registerJobs() error {
	// Hourly: drop password reset tokens past their expiry.
	_, err := m.cron.AddFunc("0 0 * * * *", func() {
		m.logJobStart("cleanup_reset_tokens")
		m.CleanupExpiredResetTokens()
	})
	if err != nil {
		return err
	}

	// Daily at 3 AM: drop blacklist entries whose tokens already expired.
	_, err = m.cron.AddFunc("0 0 3 * * *", func() {
		m.logJobStart("cleanup_token_blacklist")
		m.CleanupExpiredBlacklistEntries()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered")
	return nil
}

func (m *CronManager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))
}

func (m *CronManager) logJobComplete(jobName string, message string) {
	log.Printf("[CRON] Completed job: %s - %s", jobName, message)
}

func (m *CronManager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Error in job: %s - %v", jobName, err)
}
