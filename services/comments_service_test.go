package services

import (
	"context"
	"testing"

	"github.com/grigorishin/course-platform-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetComments_EmptyCourseFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentsService(db)

	block := seedCountryBlock(t, db, "Europe")
	country := seedCountry(t, db, "Germany", block.ID)
	course := seedCourse(t, db, "German A1", country.ID)

	_, err := svc.GetComments(context.Background(), course.ID)
	assert.ErrorIs(t, err, ErrCommentsNotFound)
}

func TestCreateComment_RequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentsService(db)

	block := seedCountryBlock(t, db, "Europe")
	country := seedCountry(t, db, "Germany", block.ID)
	course := seedCourse(t, db, "German A1", country.ID)
	outsider := seedUser(t, db, "outsider@example.com")

	_, err := svc.CreateComment(context.Background(), "great course", course.ID, &outsider)
	assert.ErrorIs(t, err, ErrUserDoesNotOwnCourse)

	// Nothing may be persisted on the failed attempt.
	var count int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateComment_EnrolledUserSucceeds(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentsService(db)

	block := seedCountryBlock(t, db, "Europe")
	country := seedCountry(t, db, "Germany", block.ID)
	course := seedCourse(t, db, "German A1", country.ID)
	student := seedUser(t, db, "student@example.com")
	enroll(t, db, student.ID, course.ID)

	comment, err := svc.CreateComment(context.Background(), "great course", course.ID, &student)
	require.NoError(t, err)
	assert.Equal(t, "great course", comment.Text)
	assert.Equal(t, student.ID, comment.UserID)
	assert.Equal(t, course.ID, comment.CourseID)
	// The returned comment carries its resolved author.
	assert.Equal(t, student.Email, comment.User.Email)

	comments, err := svc.GetComments(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestUpdateComment_MergePatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentsService(db)

	block := seedCountryBlock(t, db, "Europe")
	country := seedCountry(t, db, "Germany", block.ID)
	course := seedCourse(t, db, "German A1", country.ID)
	student := seedUser(t, db, "student@example.com")
	enroll(t, db, student.ID, course.ID)

	created, err := svc.CreateComment(context.Background(), "original", course.ID, &student)
	require.NoError(t, err)

	// An all-nil patch changes nothing.
	unchanged, err := svc.UpdateComment(context.Background(), created.ID, CommentPatch{})
	require.NoError(t, err)
	assert.Equal(t, "original", unchanged.Text)
	assert.Equal(t, created.UserID, unchanged.UserID)
	assert.Equal(t, created.CourseID, unchanged.CourseID)

	// A single-field patch touches only that field.
	updated, err := svc.UpdateComment(context.Background(), created.ID, CommentPatch{Text: strPtr("edited")})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.CourseID, updated.CourseID)
}

func TestUpdateComment_MissingTargetFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentsService(db)

	_, err := svc.UpdateComment(context.Background(), 9999, CommentPatch{Text: strPtr("x")})
	assert.ErrorIs(t, err, ErrCommentNotExist)
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentsService(db)

	block := seedCountryBlock(t, db, "Europe")
	country := seedCountry(t, db, "Germany", block.ID)
	course := seedCourse(t, db, "German A1", country.ID)
	student := seedUser(t, db, "student@example.com")
	enroll(t, db, student.ID, course.ID)

	created, err := svc.CreateComment(context.Background(), "bye", course.ID, &student)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteComment(context.Background(), created.ID), ErrCommentNotExist)
}
