package services

import (
	"context"

	"github.com/grigorishin/course-platform-api/model"
	"github.com/grigorishin/course-platform-api/store"
	"gorm.io/gorm"
)

// ScheduleService exposes the weekly class schedule as a read-only view.
type ScheduleService struct {
	store *store.ScheduleStore
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{store: store.NewScheduleStore(db)}
}

// WeeklySchedule maps a weekday index (0=Monday .. 6=Sunday) to the rows
// falling on that weekday, kept in storage order within a day.
type WeeklySchedule struct {
	Schedule map[int][]model.Schedule `json:"schedule"`
}

// GetSchedule loads all rows and groups them by the weekday of their start
// time. A store with no rows at all fails with ErrScheduleEmpty.
func (s *ScheduleService) GetSchedule(ctx context.Context) (*WeeklySchedule, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrScheduleEmpty
	}

	grouped := make(map[int][]model.Schedule)
	for _, row := range rows {
		day := row.Weekday()
		grouped[day] = append(grouped[day], row)
	}

	return &WeeklySchedule{Schedule: grouped}, nil
}
