package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/utmbiblio/library-service/internal/policy"
	"github.com/utmbiblio/library-service/internal/repository"
	"github.com/utmbiblio/library-service/internal/storage"
	"github.com/utmbiblio/library-service/internal/utils"
)

// DigitalBookHandler manages uploaded digital copies of catalog books.
// File bytes go to the disk store; only the relative path and size are
// recorded in the database.
type DigitalBookHandler struct {
	Digital *repository.DigitalBookRepo
	Books   *repository.BookRepo
	Store   *storage.FileStore
}

func NewDigitalBookHandler(d *repository.DigitalBookRepo, b *repository.BookRepo, s *storage.FileStore) *DigitalBookHandler {
	return &DigitalBookHandler{Digital: d, Books: b, Store: s}
}

// List returns every digital book with its catalog title.
func (h *DigitalBookHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Digital.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// Upload accepts a multipart form with a `file` part and a `book_id`
// field, stores the file on disk and records it.  Only .pdf and .epub are
// accepted.
func (h *DigitalBookHandler) Upload(c echo.Context) error {
	if !policy.CanManageDigitalBooks(currentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	var bookID uint64
	if err := echo.FormFieldBinder(c).Uint64("book_id", &bookID).BindError(); err != nil || bookID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "book_id required"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file required"})
	}
	if !utils.ValidUploadName(fh.Filename) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "only .pdf and .epub files are accepted"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	// The book must exist before any bytes hit the disk.
	if _, err := h.Books.GetByID(ctx, bookID); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read upload failed"})
	}
	defer src.Close()

	path, err := h.Store.Save(bookID, fh.Filename, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store file failed"})
	}

	id, err := h.Digital.Create(ctx, bookID, path, fh.Size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "record file failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "file_path": path, "size_bytes": fh.Size})
}
