package services

import (
	"testing"
	"time"

	"github.com/grigorishin/course-platform-api/database"
	"github.com/grigorishin/course-platform-api/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with foreign keys enforced
// and the full schema migrated. The pool is pinned to a single connection
// so every query sees the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()
	role := model.Role{Name: "student-" + email}
	require.NoError(t, db.Create(&role).Error)

	user := model.User{
		Email:          email,
		FirstName:      "Test",
		LastName:       "User",
		HashedPassword: "not-a-real-hash",
		IsActive:       true,
		RoleID:         role.ID,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCountryBlock(t *testing.T, db *gorm.DB, name string) model.CountryBlock {
	t.Helper()
	block := model.CountryBlock{Name: name}
	require.NoError(t, db.Create(&block).Error)
	return block
}

func seedCountry(t *testing.T, db *gorm.DB, name string, blockID uint) model.Country {
	t.Helper()
	country := model.Country{Name: name, CountryBlockID: blockID}
	require.NoError(t, db.Create(&country).Error)
	return country
}

func seedCourse(t *testing.T, db *gorm.DB, title string, countryID uint) model.Course {
	t.Helper()
	course := model.Course{
		Title:       title,
		Subtitle:    "subtitle",
		Description: "description",
		ImageLink:   "https://cdn.example.com/img.png",
		Link:        "https://example.com/course",
		Price:       100,
		StartingAt:  time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC),
		CountryID:   countryID,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func enroll(t *testing.T, db *gorm.DB, userID, courseID uint) {
	t.Helper()
	require.NoError(t, db.Create(&model.UserCourse{UserID: userID, CourseID: courseID}).Error)
}

func seedBook(t *testing.T, db *gorm.DB, title string) model.Book {
	t.Helper()
	book := model.Book{Title: title, Author: "Author"}
	require.NoError(t, db.Create(&book).Error)
	return book
}

func attachBookToCourse(t *testing.T, db *gorm.DB, bookID, courseID uint) {
	t.Helper()
	require.NoError(t, db.Create(&model.BookCourse{BookID: bookID, CourseID: courseID}).Error)
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }
