package store

import (
	"context"

	"github.com/grigorishin/course-platform-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LibraryStore issues book and preview queries against the relational store.
type LibraryStore struct {
	db *gorm.DB
}

func NewLibraryStore(db *gorm.DB) *LibraryStore {
	return &LibraryStore{db: db}
}

func (s *LibraryStore) GetBook(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	err := s.db.WithContext(ctx).Preload("Courses").First(&book, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListBooks returns one page of books ordered by id ascending together with
// the total row count of the unpaged query. An empty courseIDs slice means
// no course filter.
func (s *LibraryStore) ListBooks(ctx context.Context, limit, offset int, courseIDs []uint) ([]model.Book, int64, error) {
	filtered := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&model.Book{})
		if len(courseIDs) > 0 {
			q = q.Joins("JOIN book_courses ON book_courses.book_id = books.id").
				Where("book_courses.course_id IN ?", courseIDs).
				Distinct("books.id")
		}
		return q
	}

	// Total count is taken before the limit/offset slice is applied.
	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := s.db.WithContext(ctx).Model(&model.Book{})
	if len(courseIDs) > 0 {
		q = q.Joins("JOIN book_courses ON book_courses.book_id = books.id").
			Where("book_courses.course_id IN ?", courseIDs).
			Distinct("books.*")
	}

	var books []model.Book
	err := q.
		Preload("Courses").
		Order("books.id").
		Limit(limit).
		Offset(offset).
		Find(&books).Error
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (s *LibraryStore) GetPreview(ctx context.Context, id uint) (*model.LibraryPreview, error) {
	var preview model.LibraryPreview
	err := s.db.WithContext(ctx).Preload("Book").First(&preview, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &preview, nil
}

// RandomPreview returns a uniformly random preview row, or nil when the
// preview table is empty.
func (s *LibraryStore) RandomPreview(ctx context.Context) (*model.LibraryPreview, error) {
	var preview model.LibraryPreview
	err := s.db.WithContext(ctx).
		Preload("Book").
		Order("RANDOM()").
		First(&preview).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &preview, nil
}

func (s *LibraryStore) CreateBook(ctx context.Context, book *model.Book) error {
	return s.db.WithContext(ctx).Create(book).Error
}

func (s *LibraryStore) SaveBook(ctx context.Context, book *model.Book) error {
	// Loaded associations must not be written back with the row.
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(book).Error
}

func (s *LibraryStore) DeleteBook(ctx context.Context, book *model.Book) error {
	return s.db.WithContext(ctx).Delete(&model.Book{ID: book.ID}).Error
}

func (s *LibraryStore) CreatePreview(ctx context.Context, preview *model.LibraryPreview) error {
	return s.db.WithContext(ctx).Create(preview).Error
}

func (s *LibraryStore) SavePreview(ctx context.Context, preview *model.LibraryPreview) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(preview).Error
}

func (s *LibraryStore) DeletePreview(ctx context.Context, preview *model.LibraryPreview) error {
	return s.db.WithContext(ctx).Delete(&model.LibraryPreview{ID: preview.ID}).Error
}
