package library

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/grigorishin/course-platform-api/services"
	"github.com/grigorishin/course-platform-api/services/storage"
	"github.com/grigorishin/course-platform-api/utils/pdfvalidation"
	"github.com/grigorishin/course-platform-api/utils/response"
)

// UploadBookFile handles POST /api/library/:id/upload. A multipart "file"
// field carrying a PDF is validated, stored in object storage and linked as
// the book's download URL.
func (h *LibraryHandler) UploadBookFile(c *fiber.Ctx) error {
	if h.storage == nil {
		return response.Error(c, fiber.StatusServiceUnavailable,
			"File storage is not configured", "STORAGE_UNAVAILABLE")
	}

	bookID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid book id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "A PDF file is required in the 'file' field")
	}

	result, err := pdfvalidation.ValidatePDFFile(fileHeader, pdfvalidation.BookLimits)
	if err != nil {
		return response.InternalServerError(c, "Failed to process uploaded file")
	}
	if !result.Valid {
		return response.BadRequest(c, result.Error)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}

	key := storage.GenerateKey(fmt.Sprintf("books/%d", bookID), fileHeader.Filename)
	url, err := h.storage.UploadBytes(c.Context(), key, content, "application/pdf")
	if err != nil {
		return response.InternalServerError(c, "Failed to store file")
	}

	svc := services.NewLibraryService(h.db)
	book, err := svc.UpdateBook(c.Context(), bookID, services.BookPatch{DownloadLink: &url})
	if err != nil {
		if errors.Is(err, services.ErrBookNotExist) {
			// Roll back the orphaned object before reporting.
			_ = h.storage.DeleteFile(c.Context(), key)
			return response.NotFoundCode(c, "Book does not exist", "BOOK_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to link file to book")
	}

	return response.Success(c, fiber.Map{
		"book":       book,
		"page_count": result.PageCount,
	})
}
