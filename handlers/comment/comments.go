package comment

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grigorishin/course-platform-api/services"
	"github.com/grigorishin/course-platform-api/utils/middleware"
	"github.com/grigorishin/course-platform-api/utils/response"
	"github.com/grigorishin/course-platform-api/utils/validation"
	"gorm.io/gorm"
)

// CommentHandler handles course comment requests.
type CommentHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateCommentRequest represents the request body for creating a comment
type CreateCommentRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	CourseID uint   `json:"course_id" validate:"required,min=1"`
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ListComments handles GET /api/comments?course_id=
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	courseID, err := strconv.ParseUint(c.Query("course_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "course_id query parameter is required")
	}

	svc := services.NewCommentsService(h.db)
	comments, err := svc.GetComments(c.Context(), uint(courseID))
	if err != nil {
		if errors.Is(err, services.ErrCommentsNotFound) {
			return response.BadRequestCode(c, "Comments not found", "COMMENTS_NOT_FOUND")
		}
		return response.InternalServerError(c, "Failed to fetch comments")
	}

	return response.Success(c, comments)
}

// CreateComment handles POST /api/comments. The author must be enrolled in
// the target course.
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	req.Text = validation.SanitizeString(req.Text)

	svc := services.NewCommentsService(h.db)
	comment, err := svc.CreateComment(c.Context(), req.Text, req.CourseID, user)
	if err != nil {
		if errors.Is(err, services.ErrUserDoesNotOwnCourse) {
			return response.Forbidden(c, "You are not enrolled in this course")
		}
		return response.InternalServerError(c, "Failed to create comment")
	}

	return response.Created(c, comment)
}

// UpdateComment handles PATCH /api/comments/:id
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	commentID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid comment id")
	}

	var patch services.CommentPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	svc := services.NewCommentsService(h.db)
	comment, err := svc.UpdateComment(c.Context(), commentID, patch)
	if err != nil {
		if errors.Is(err, services.ErrCommentNotExist) {
			return response.NotFoundCode(c, "Comment does not exist", "COMMENT_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to update comment")
	}

	return response.Success(c, comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	commentID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid comment id")
	}

	svc := services.NewCommentsService(h.db)
	if err := svc.DeleteComment(c.Context(), commentID); err != nil {
		if errors.Is(err, services.ErrCommentNotExist) {
			return response.NotFoundCode(c, "Comment does not exist", "COMMENT_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to delete comment")
	}

	return response.NoContent(c)
}
