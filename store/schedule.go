package store

import (
	"context"

	"github.com/grigorishin/course-platform-api/model"
	"gorm.io/gorm"
)

// ScheduleStore issues schedule queries. The schedule surface is read-only.
type ScheduleStore struct {
	db *gorm.DB
}

func NewScheduleStore(db *gorm.DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

// List returns every schedule row with its course resolved, in storage order.
func (s *ScheduleStore) List(ctx context.Context) ([]model.Schedule, error) {
	var rows []model.Schedule
	err := s.db.WithContext(ctx).
		Preload("Course").
		Preload("Course.Country").
		Find(&rows).Error
	return rows, err
}
