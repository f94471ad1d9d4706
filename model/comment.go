package model

import "time"

// Comment is authored by an enrolled user on a course.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CourseID uint   `gorm:"not null;index" json:"course_id"`
	Course   Course `gorm:"foreignKey:CourseID" json:"-"`
}
