package store

import (
	"context"

	"github.com/grigorishin/course-platform-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentStore issues comment queries against the relational store. It holds
// no business logic; existence and ownership decisions live in services.
type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

// Get returns the comment with the given id, or nil when it does not exist.
func (s *CommentStore) Get(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Preload("User").First(&comment, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByCourse returns the comments of a course, newest first.
func (s *CommentStore) ListByCourse(ctx context.Context, courseID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (s *CommentStore) Create(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentStore) Save(ctx context.Context, comment *model.Comment) error {
	// Loaded associations must not be written back with the row.
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(comment).Error
}

func (s *CommentStore) Delete(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Delete(comment).Error
}

// UserOwnsCourse reports whether the user is enrolled in the course.
func (s *CommentStore) UserOwnsCourse(ctx context.Context, userID, courseID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.UserCourse{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
