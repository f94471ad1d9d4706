package library

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grigorishin/course-platform-api/services"
	"github.com/grigorishin/course-platform-api/utils/response"
	"github.com/grigorishin/course-platform-api/utils/validation"
)

// GetPreview handles GET /api/library/preview and
// GET /api/library/preview/:id. Without an id a random preview is served.
func (h *LibraryHandler) GetPreview(c *fiber.Ctx) error {
	var previewID *uint
	if raw := c.Params("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid preview id")
		}
		v := uint(id)
		previewID = &v
	}

	svc := services.NewLibraryService(h.db)
	preview, err := svc.GetPreview(c.Context(), previewID)
	if err != nil {
		if errors.Is(err, services.ErrLibraryPreviewEmpty) {
			return response.BadRequestCode(c, "Library preview is empty", "LIBRARY_PREVIEW_EMPTY")
		}
		return response.InternalServerError(c, "Failed to fetch preview")
	}

	return response.Success(c, preview)
}

// CreatePreview handles POST /api/library/preview
func (h *LibraryHandler) CreatePreview(c *fiber.Ctx) error {
	var req services.PreviewCreate
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	req.Quote = validation.SanitizeString(req.Quote)
	req.QuoteAuthor = validation.SanitizeString(req.QuoteAuthor)

	svc := services.NewLibraryService(h.db)
	preview, err := svc.CreatePreview(c.Context(), req)
	if err != nil {
		return response.InternalServerError(c, "Failed to create preview")
	}

	return response.Created(c, preview)
}

// UpdatePreview handles PATCH /api/library/preview/:id
func (h *LibraryHandler) UpdatePreview(c *fiber.Ctx) error {
	previewID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid preview id")
	}

	var patch services.PreviewPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	svc := services.NewLibraryService(h.db)
	preview, err := svc.UpdatePreview(c.Context(), previewID, patch)
	if err != nil {
		if errors.Is(err, services.ErrPreviewNotExist) {
			return response.NotFoundCode(c, "Preview does not exist", "PREVIEW_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to update preview")
	}

	return response.Success(c, preview)
}

// DeletePreview handles DELETE /api/library/preview/:id
func (h *LibraryHandler) DeletePreview(c *fiber.Ctx) error {
	previewID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid preview id")
	}

	svc := services.NewLibraryService(h.db)
	if err := svc.DeletePreview(c.Context(), previewID); err != nil {
		if errors.Is(err, services.ErrPreviewNotExist) {
			return response.NotFoundCode(c, "Preview does not exist", "PREVIEW_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to delete preview")
	}

	return response.NoContent(c)
}
