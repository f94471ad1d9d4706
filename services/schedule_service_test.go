package services

import (
	"context"
	"testing"
	"time"

	"github.com/grigorishin/course-platform-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchedule_GroupsByWeekday(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)

	block := seedCountryBlock(t, db, "Europe")
	germany := seedCountry(t, db, "Germany", block.ID)
	course := seedCourse(t, db, "German A1", germany.ID)

	// 2026-09-02 is a Wednesday, 2026-09-07 a Monday.
	wednesday := time.Date(2026, time.September, 2, 18, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.September, 7, 18, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&model.Schedule{
		StartTime: wednesday,
		EndTime:   wednesday.Add(90 * time.Minute),
		CourseID:  course.ID,
	}).Error)
	require.NoError(t, db.Create(&model.Schedule{
		StartTime: monday,
		EndTime:   monday.Add(90 * time.Minute),
		CourseID:  course.ID,
	}).Error)

	weekly, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)

	// Weekdays are keyed Monday=0 through Sunday=6.
	require.Contains(t, weekly.Schedule, 0)
	require.Contains(t, weekly.Schedule, 2)
	assert.Len(t, weekly.Schedule, 2)
	assert.Len(t, weekly.Schedule[0], 1)
	assert.Len(t, weekly.Schedule[2], 1)

	// Rows carry their resolved course.
	assert.Equal(t, "German A1", weekly.Schedule[2][0].Course.Title)
}

func TestGetSchedule_EmptyFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)

	_, err := svc.GetSchedule(context.Background())
	assert.ErrorIs(t, err, ErrScheduleEmpty)
}
