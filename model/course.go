package model

import "time"

// Course is a purchasable course offered in a single country.
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Subtitle    string    `gorm:"not null" json:"subtitle"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageLink   string    `gorm:"not null" json:"image_link"`
	Link        string    `gorm:"not null" json:"link"`
	Price       int       `gorm:"not null" json:"price"`
	StartingAt  time.Time `gorm:"not null" json:"starting_at"`

	CountryID uint    `gorm:"not null;index" json:"country_id"`
	Country   Country `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT" json:"country,omitempty"`

	// Relationships
	Users    []User    `gorm:"many2many:user_courses" json:"-"`
	Comments []Comment `gorm:"foreignKey:CourseID" json:"comments,omitempty"`
	Books    []Book    `gorm:"many2many:book_courses" json:"-"`
}
