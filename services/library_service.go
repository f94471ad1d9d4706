package services

import (
	"context"

	"github.com/grigorishin/course-platform-api/model"
	"github.com/grigorishin/course-platform-api/store"
	"gorm.io/gorm"
)

// LibraryService manages books and library previews.
type LibraryService struct {
	store *store.LibraryStore
}

func NewLibraryService(db *gorm.DB) *LibraryService {
	return &LibraryService{store: store.NewLibraryStore(db)}
}

// LibraryPage is one page of the library listing. TotalBooks and TotalPages
// describe the whole filtered result, not the page.
type LibraryPage struct {
	TotalBooks int64        `json:"total_books"`
	TotalPages int          `json:"total_pages"`
	Books      []model.Book `json:"books"`
}

// BookCreate carries the fields required to insert a book.
type BookCreate struct {
	Title        string  `json:"title" validate:"required"`
	Author       string  `json:"author" validate:"required"`
	DownloadLink *string `json:"download_link" validate:"omitempty,url"`
}

// BookPatch lists the book fields a partial update may touch.
type BookPatch struct {
	Title        *string `json:"title"`
	Author       *string `json:"author"`
	DownloadLink *string `json:"download_link"`
}

func (p BookPatch) Apply(book model.Book) model.Book {
	if p.Title != nil {
		book.Title = *p.Title
	}
	if p.Author != nil {
		book.Author = *p.Author
	}
	if p.DownloadLink != nil {
		book.DownloadLink = p.DownloadLink
	}
	return book
}

// PreviewCreate carries the fields required to insert a library preview.
type PreviewCreate struct {
	Quote       string `json:"quote" validate:"required"`
	QuoteAuthor string `json:"quote_author" validate:"required"`
	BookID      uint   `json:"book_id" validate:"required,min=1"`
}

// PreviewPatch lists the preview fields a partial update may touch.
type PreviewPatch struct {
	Quote       *string `json:"quote"`
	QuoteAuthor *string `json:"quote_author"`
	BookID      *uint   `json:"book_id"`
}

func (p PreviewPatch) Apply(preview model.LibraryPreview) model.LibraryPreview {
	if p.Quote != nil {
		preview.Quote = *p.Quote
	}
	if p.QuoteAuthor != nil {
		preview.QuoteAuthor = *p.QuoteAuthor
	}
	if p.BookID != nil {
		preview.BookID = *p.BookID
	}
	return preview
}

// GetLibrary returns one page of books ordered by id ascending. The total
// book and page counts are computed from the unpaged filtered query before
// the limit/offset slice is applied. A non-positive limit is rejected with
// ErrInvalidPageSize, and an empty page fails with ErrLibraryNotFound.
func (s *LibraryService) GetLibrary(ctx context.Context, limit, offset int, courseIDs []uint) (*LibraryPage, error) {
	if limit <= 0 {
		return nil, ErrInvalidPageSize
	}

	books, total, err := s.store.ListBooks(ctx, limit, offset, courseIDs)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrLibraryNotFound
	}

	return &LibraryPage{
		TotalBooks: total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		Books:      books,
	}, nil
}

// GetPreview returns the preview with the given id. With a nil id it picks
// one uniformly at random across all preview rows. No preview at all fails
// with ErrLibraryPreviewEmpty.
func (s *LibraryService) GetPreview(ctx context.Context, previewID *uint) (*model.LibraryPreview, error) {
	var preview *model.LibraryPreview
	var err error
	if previewID == nil {
		preview, err = s.store.RandomPreview(ctx)
	} else {
		preview, err = s.store.GetPreview(ctx, *previewID)
	}
	if err != nil {
		return nil, err
	}
	if preview == nil {
		return nil, ErrLibraryPreviewEmpty
	}
	return preview, nil
}

func (s *LibraryService) CreateBook(ctx context.Context, create BookCreate) (*model.Book, error) {
	book := model.Book{
		Title:        create.Title,
		Author:       create.Author,
		DownloadLink: create.DownloadLink,
	}
	if err := s.store.CreateBook(ctx, &book); err != nil {
		return nil, err
	}
	return s.store.GetBook(ctx, book.ID)
}

func (s *LibraryService) UpdateBook(ctx context.Context, bookID uint, patch BookPatch) (*model.Book, error) {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotExist
	}

	updated := patch.Apply(*book)
	if err := s.store.SaveBook(ctx, &updated); err != nil {
		return nil, err
	}
	return s.store.GetBook(ctx, bookID)
}

func (s *LibraryService) DeleteBook(ctx context.Context, bookID uint) error {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotExist
	}
	return s.store.DeleteBook(ctx, book)
}

// CreatePreview inserts a preview. The book id must reference an existing
// book; the store's foreign key rejects a dangling reference.
func (s *LibraryService) CreatePreview(ctx context.Context, create PreviewCreate) (*model.LibraryPreview, error) {
	preview := model.LibraryPreview{
		Quote:       create.Quote,
		QuoteAuthor: create.QuoteAuthor,
		BookID:      create.BookID,
	}
	if err := s.store.CreatePreview(ctx, &preview); err != nil {
		return nil, err
	}
	return s.store.GetPreview(ctx, preview.ID)
}

func (s *LibraryService) UpdatePreview(ctx context.Context, previewID uint, patch PreviewPatch) (*model.LibraryPreview, error) {
	preview, err := s.store.GetPreview(ctx, previewID)
	if err != nil {
		return nil, err
	}
	if preview == nil {
		return nil, ErrPreviewNotExist
	}

	updated := patch.Apply(*preview)
	if err := s.store.SavePreview(ctx, &updated); err != nil {
		return nil, err
	}
	return s.store.GetPreview(ctx, previewID)
}

func (s *LibraryService) DeletePreview(ctx context.Context, previewID uint) error {
	preview, err := s.store.GetPreview(ctx, previewID)
	if err != nil {
		return err
	}
	if preview == nil {
		return ErrPreviewNotExist
	}
	return s.store.DeletePreview(ctx, preview)
}
