package services

import (
	"context"

	"github.com/grigorishin/course-platform-api/model"
	"github.com/grigorishin/course-platform-api/store"
	"gorm.io/gorm"
)

// CommentsService enforces the comment business rules: enrollment gates
// creation, targeted mutations require the comment to exist, and listing an
// empty course comment stream is an error rather than an empty success.
type CommentsService struct {
	store *store.CommentStore
}

// NewCommentsService creates a comments manager bound to the given session.
func NewCommentsService(db *gorm.DB) *CommentsService {
	return &CommentsService{store: store.NewCommentStore(db)}
}

// CommentPatch lists the comment fields a partial update may touch. Nil
// fields leave the stored value unchanged.
type CommentPatch struct {
	Text     *string `json:"text"`
	UserID   *uint   `json:"user_id"`
	CourseID *uint   `json:"course_id"`
}

// Apply merges the patch into a copy of the comment and returns it.
func (p CommentPatch) Apply(comment model.Comment) model.Comment {
	if p.Text != nil {
		comment.Text = *p.Text
	}
	if p.UserID != nil {
		comment.UserID = *p.UserID
	}
	if p.CourseID != nil {
		comment.CourseID = *p.CourseID
	}
	return comment
}

// GetComments returns the comments of a course, newest first. An empty
// result set fails with ErrCommentsNotFound.
func (s *CommentsService) GetComments(ctx context.Context, courseID uint) ([]model.Comment, error) {
	comments, err := s.store.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrCommentsNotFound
	}
	return comments, nil
}

// CreateComment inserts a comment authored by the given user. It fails with
// ErrUserDoesNotOwnCourse, persisting nothing, unless the author is enrolled
// in the target course.
func (s *CommentsService) CreateComment(ctx context.Context, text string, courseID uint, author *model.User) (*model.Comment, error) {
	owns, err := s.store.UserOwnsCourse(ctx, author.ID, courseID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, ErrUserDoesNotOwnCourse
	}

	comment := model.Comment{
		Text:     text,
		UserID:   author.ID,
		CourseID: courseID,
	}
	if err := s.store.Create(ctx, &comment); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, comment.ID)
}

// UpdateComment applies a merge-patch to an existing comment and returns the
// canonical stored state.
func (s *CommentsService) UpdateComment(ctx context.Context, commentID uint, patch CommentPatch) (*model.Comment, error) {
	comment, err := s.store.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotExist
	}

	updated := patch.Apply(*comment)
	if err := s.store.Save(ctx, &updated); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, commentID)
}

// DeleteComment removes a comment after checking it exists.
func (s *CommentsService) DeleteComment(ctx context.Context, commentID uint) error {
	comment, err := s.store.Get(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotExist
	}
	return s.store.Delete(ctx, comment)
}
