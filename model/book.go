package model

// Book is a library entry that may be linked to any number of courses.
// DownloadLink is nil until a file has been attached.
type Book struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"not null" json:"title"`
	Author       string  `gorm:"not null" json:"author"`
	DownloadLink *string `json:"download_link"`

	// Relationships
	Courses  []Course         `gorm:"many2many:book_courses" json:"courses,omitempty"`
	Previews []LibraryPreview `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT" json:"-"`
}

// BookCourse is the join row between books and courses, with a surrogate key.
type BookCourse struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BookID   uint `gorm:"index;not null" json:"book_id"`
	CourseID uint `gorm:"index;not null" json:"course_id"`
}

// LibraryPreview is a quote from a book shown on the library landing page.
type LibraryPreview struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Quote       string `gorm:"type:text;not null" json:"quote"`
	QuoteAuthor string `gorm:"not null" json:"quote_author"`

	BookID uint `gorm:"not null;index" json:"book_id"`
	Book   Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}
