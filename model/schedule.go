package model

import "time"

// Schedule is a single class slot belonging to a course. The API surface
// for schedules is read-only; rows are maintained directly in the store.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	CourseID uint   `gorm:"not null;index" json:"course_id"`
	Course   Course `gorm:"foreignKey:CourseID;constraint:OnDelete:RESTRICT" json:"course,omitempty"`
}

// Weekday returns the weekday index of the slot with Monday as 0 and
// Sunday as 6.
func (s *Schedule) Weekday() int {
	return (int(s.StartTime.Weekday()) + 6) % 7
}
