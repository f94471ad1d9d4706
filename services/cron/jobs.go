package cron

import (
	"fmt"
	"time"

	"github.com/grigorishin/course-platform-api/model"
)

// CleanupExpiredResetTokens deletes password reset tokens that expired or
// were already consumed more than a day ago.
func (m *CronManager) CleanupExpiredResetTokens() {
	jobName := "cleanup_reset_tokens"

	cutoff := time.Now()
	result := m.db.
		Where("expires_at < ?", cutoff).
		Or("used_at IS NOT NULL AND used_at < ?", cutoff.Add(-24*time.Hour)).
		Delete(&model.PasswordResetToken{})
	if result.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to delete reset tokens: %w", result.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Removed %d reset tokens", result.RowsAffected))
}

// CleanupExpiredBlacklistEntries deletes blacklist rows for tokens that have
// passed their own expiry. Such tokens fail validation anyway.
func (m *CronManager) CleanupExpiredBlacklistEntries() {
	jobName := "cleanup_token_blacklist"

	result := m.db.
		Where("expires_at < ?", time.Now()).
		Delete(&model.TokenBlacklist{})
	if result.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to delete blacklist entries: %w", result.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Removed %d blacklist entries", result.RowsAffected))
}
