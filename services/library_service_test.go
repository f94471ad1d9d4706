package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/grigorishin/course-platform-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLibrary_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewLibraryService(db)

	for i := 1; i <= 5; i++ {
		seedBook(t, db, fmt.Sprintf("Book %d", i))
	}

	page, err := svc.GetLibrary(context.Background(), 2, 0, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.TotalBooks)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Books, 2)

	// The last page holds the remainder.
	last, err := svc.GetLibrary(context.Background(), 2, 4, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 5, last.TotalBooks)
	assert.Equal(t, 3, last.TotalPages)
	assert.Len(t, last.Books, 1)
}

func TestGetLibrary_InvalidPageSize(t *testing.T) {
	db := newTestDB(t)
	svc := NewLibraryService(db)

	seedBook(t, db, "Book 1")

	_, err := svc.GetLibrary(context.Background(), 0, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = svc.GetLibrary(context.Background(), -3, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestGetLibrary_EmptyFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewLibraryService(db)

	_, err := svc.GetLibrary(context.Background(), 2, 0, nil)
	assert.ErrorIs(t, err, ErrLibraryNotFound)
}

func TestGetLibrary_FilterByCourses(t *testing.T) {
	db := newTestDB(t)
	svc := NewLibraryService(db)

	block := seedCountryBlock(t, db, "Europe")
	germany := seedCountry(t, db, "Germany", block.ID)
	courseA := seedCourse(t, db, "German A1", germany.ID)
	courseB := seedCourse(t, db, "German B2", germany.ID)

	bookA := seedBook(t, db, "Grammar A1")
	bookB := seedBook(t, db, "Grammar B2")
	bookBoth := seedBook(t, db, "Dictionary")
	seedBook(t, db, "Unattached")

	attachBookToCourse(t, db, bookA.ID, courseA.ID)
	attachBookToCourse(t, db, bookB.ID, courseB.ID)
	attachBookToCourse(t, db, bookBoth.ID, courseA.ID)
	attachBookToCourse(t, db, bookBoth.ID, courseB.ID)

	pageA, err := svc.GetLibrary(context.Background(), 10, 0, []uint{courseA.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, pageA.TotalBooks)

	// A book linked to both courses counts once.
	both, err := svc.GetLibrary(context.Background(), 10, 0, []uint{courseA.ID, courseB.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 3, both.TotalBooks)
	assert.Len(t, both.Books, 3)
}

func TestGetPreview_RandomWhenUnspecified(t *testing.T) {
	db := newTestDB(t)
	svc := NewLibraryService(db)

	book := seedBook(t, db, "Grammar A1")
	preview := model.LibraryPreview{Quote: "A quote", QuoteAuthor: "Goethe", BookID: book.ID}
	require.NoError(t, db.Create(&preview).Error)

	random, err := svc.GetPreview(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, preview.ID, random.ID)
	assert.Equal(t, book.Title, random.Book.Title)

	byID, err := svc.GetPreview(context.Background(), uintPtr(preview.ID))
	require.NoError(t, err)
	assert.Equal(t, "A quote", byID.Quote)
}

func TestGetPreview_EmptyStoreFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewLibraryService(db)

	_, err := svc.GetPreview(context.Background(), nil)
	assert.ErrorIs(t, err, ErrLibraryPreviewEmpty)
}

func TestBookCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewLibraryService(db)

	book, err := svc.CreateBook(context.Background(), BookCreate{
		Title:  "Grammar A1",
		Author: "Langenscheidt",
	})
	require.NoError(t, err)
	assert.Nil(t, book.DownloadLink)

	link := "https://cdn.example.com/grammar-a1.pdf"
	updated, err := svc.UpdateBook(context.Background(), book.ID, BookPatch{DownloadLink: &link})
	require.NoError(t, err)
	require.NotNil(t, updated.DownloadLink)
	assert.Equal(t, link, *updated.DownloadLink)
	assert.Equal(t, "Grammar A1", updated.Title)

	require.NoError(t, svc.DeleteBook(context.Background(), book.ID))
	assert.ErrorIs(t, svc.DeleteBook(context.Background(), book.ID), ErrBookNotExist)
}

func TestPreviewCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewLibraryService(db)

	book := seedBook(t, db, "Grammar A1")

	preview, err := svc.CreatePreview(context.Background(), PreviewCreate{
		Quote:       "A quote",
		QuoteAuthor: "Goethe",
		BookID:      book.ID,
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePreview(context.Background(), preview.ID, PreviewPatch{Quote: strPtr("Another quote")})
	require.NoError(t, err)
	assert.Equal(t, "Another quote", updated.Quote)
	assert.Equal(t, "Goethe", updated.QuoteAuthor)

	require.NoError(t, svc.DeletePreview(context.Background(), preview.ID))
	assert.ErrorIs(t, svc.DeletePreview(context.Background(), preview.ID), ErrPreviewNotExist)

	_, err = svc.UpdatePreview(context.Background(), preview.ID, PreviewPatch{})
	assert.ErrorIs(t, err, ErrPreviewNotExist)
}
