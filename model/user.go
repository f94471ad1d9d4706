package model

import "time"

// User represents a registered user in the system
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName      string    `gorm:"not null" json:"first_name"`
	LastName       string    `gorm:"not null" json:"last_name"`
	HashedPassword string    `gorm:"not null" json:"-"` // Never expose password in JSON
	IsActive       bool      `gorm:"default:true;not null" json:"is_active"`
	IsSuperuser    bool      `gorm:"default:false;not null" json:"is_superuser"`
	IsVerified     bool      `gorm:"default:false;not null" json:"is_verified"`
	TokenVersion   int       `gorm:"default:0" json:"-"` // Increment to invalidate all user tokens

	RoleID uint `gorm:"not null;index" json:"role_id"`
	Role   Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`

	// Relationships
	Courses  []Course  `gorm:"many2many:user_courses" json:"courses,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"-"`
}

// UserCourse is the enrollment join row between users and courses. It keeps
// a surrogate key of its own rather than a composite primary key.
type UserCourse struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"index;not null" json:"user_id"`
	CourseID uint `gorm:"index;not null" json:"course_id"`
}
