package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCourses_FilterByCountryName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoursesService(db)

	block := seedCountryBlock(t, db, "Europe")
	germany := seedCountry(t, db, "Germany", block.ID)
	france := seedCountry(t, db, "France", block.ID)
	seedCourse(t, db, "German A1", germany.ID)
	seedCourse(t, db, "German B2", germany.ID)
	seedCourse(t, db, "French A1", france.ID)

	all, err := svc.GetCourses(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	german, err := svc.GetCourses(context.Background(), "Germany")
	require.NoError(t, err)
	assert.Len(t, german, 2)

	// The filter is an exact match, not a substring one.
	_, err = svc.GetCourses(context.Background(), "Germ")
	assert.ErrorIs(t, err, ErrCoursesNotFound)
}

func TestGetCourses_EmptyResultFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoursesService(db)

	_, err := svc.GetCourses(context.Background(), "")
	assert.ErrorIs(t, err, ErrCoursesNotFound)
}

func TestGetCourse_ResolvesCountry(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoursesService(db)

	block := seedCountryBlock(t, db, "Europe")
	germany := seedCountry(t, db, "Germany", block.ID)
	created := seedCourse(t, db, "German A1", germany.ID)

	course, err := svc.GetCourse(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "German A1", course.Title)
	assert.Equal(t, "Germany", course.Country.Name)
}

func TestGetCourse_MissingFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoursesService(db)

	_, err := svc.GetCourse(context.Background(), 404)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCreateCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoursesService(db)

	block := seedCountryBlock(t, db, "Europe")
	germany := seedCountry(t, db, "Germany", block.ID)

	course, err := svc.CreateCourse(context.Background(), CourseCreate{
		Title:       "German A1",
		Subtitle:    "Beginner German",
		Description: "From zero",
		ImageLink:   "https://cdn.example.com/a1.png",
		Link:        "https://example.com/a1",
		Price:       120,
		StartingAt:  time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC),
		CountryID:   germany.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, course.ID)
	assert.Equal(t, "Germany", course.Country.Name)
}

func TestUpdateCourse_MergePatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoursesService(db)

	block := seedCountryBlock(t, db, "Europe")
	germany := seedCountry(t, db, "Germany", block.ID)
	created := seedCourse(t, db, "German A1", germany.ID)

	unchanged, err := svc.UpdateCourse(context.Background(), created.ID, CoursePatch{})
	require.NoError(t, err)
	assert.Equal(t, created.Title, unchanged.Title)
	assert.Equal(t, created.Price, unchanged.Price)

	newPrice := 250
	updated, err := svc.UpdateCourse(context.Background(), created.ID, CoursePatch{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 250, updated.Price)
	assert.Equal(t, created.Title, updated.Title)
}

func TestUpdateAndDeleteCourse_MissingTargetFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoursesService(db)

	_, err := svc.UpdateCourse(context.Background(), 404, CoursePatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrCourseNotExist)
	assert.ErrorIs(t, svc.DeleteCourse(context.Background(), 404), ErrCourseNotExist)
}

func TestDeleteCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoursesService(db)

	block := seedCountryBlock(t, db, "Europe")
	germany := seedCountry(t, db, "Germany", block.ID)
	created := seedCourse(t, db, "German A1", germany.ID)

	require.NoError(t, svc.DeleteCourse(context.Background(), created.ID))

	_, err := svc.GetCourse(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
