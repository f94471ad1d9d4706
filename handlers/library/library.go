package library

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grigorishin/course-platform-api/services"
	"github.com/grigorishin/course-platform-api/services/storage"
	"github.com/grigorishin/course-platform-api/utils/response"
	"github.com/grigorishin/course-platform-api/utils/validation"
	"gorm.io/gorm"
)

// LibraryHandler handles book library requests.
type LibraryHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	storage   *storage.Client
}

// NewLibraryHandler creates a library handler. storageClient may be nil
// when object storage is not configured; uploads are rejected in that case.
func NewLibraryHandler(db *gorm.DB, storageClient *storage.Client) *LibraryHandler {
	return &LibraryHandler{
		db:        db,
		validator: validation.NewValidator(),
		storage:   storageClient,
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseCourseIDs collects every courses_ids query value, supporting the
// repeated-parameter form ?courses_ids=1&courses_ids=2.
func parseCourseIDs(c *fiber.Ctx) ([]uint, error) {
	raw := c.Context().QueryArgs().PeekMulti("courses_ids")
	ids := make([]uint, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseUint(string(v), 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// ListBooks handles GET /api/library?page=&per_page=&courses_ids=
func (h *LibraryHandler) ListBooks(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return response.BadRequest(c, "page must be a positive integer")
	}

	perPage, err := strconv.Atoi(c.Query("per_page", "2"))
	if err != nil {
		return response.BadRequest(c, "per_page must be an integer")
	}

	courseIDs, err := parseCourseIDs(c)
	if err != nil {
		return response.BadRequest(c, "courses_ids values must be integers")
	}

	svc := services.NewLibraryService(h.db)
	pageResult, err := svc.GetLibrary(c.Context(), perPage, (page-1)*perPage, courseIDs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPageSize):
			return response.BadRequestCode(c, "per_page must be positive", "INVALID_PAGE_SIZE")
		case errors.Is(err, services.ErrLibraryNotFound):
			return response.BadRequestCode(c, "Library books not found", "LIBRARY_NOT_FOUND")
		default:
			return response.InternalServerError(c, "Failed to fetch library")
		}
	}

	return response.Success(c, pageResult)
}

// CreateBook handles POST /api/library
func (h *LibraryHandler) CreateBook(c *fiber.Ctx) error {
	var req services.BookCreate
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	req.Title = validation.SanitizeString(req.Title)
	req.Author = validation.SanitizeString(req.Author)

	svc := services.NewLibraryService(h.db)
	book, err := svc.CreateBook(c.Context(), req)
	if err != nil {
		return response.InternalServerError(c, "Failed to create book")
	}

	return response.Created(c, book)
}

// UpdateBook handles PATCH /api/library/:id
func (h *LibraryHandler) UpdateBook(c *fiber.Ctx) error {
	bookID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid book id")
	}

	var patch services.BookPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	svc := services.NewLibraryService(h.db)
	book, err := svc.UpdateBook(c.Context(), bookID, patch)
	if err != nil {
		if errors.Is(err, services.ErrBookNotExist) {
			return response.NotFoundCode(c, "Book does not exist", "BOOK_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to update book")
	}

	return response.Success(c, book)
}

// DeleteBook handles DELETE /api/library/:id
func (h *LibraryHandler) DeleteBook(c *fiber.Ctx) error {
	bookID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid book id")
	}

	svc := services.NewLibraryService(h.db)
	if err := svc.DeleteBook(c.Context(), bookID); err != nil {
		if errors.Is(err, services.ErrBookNotExist) {
			return response.NotFoundCode(c, "Book does not exist", "BOOK_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to delete book")
	}

	return response.NoContent(c)
}
