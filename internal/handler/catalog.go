package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/utmbiblio/library-service/internal/catalog"
	"github.com/utmbiblio/library-service/internal/model"
	"github.com/utmbiblio/library-service/internal/policy"
	"github.com/utmbiblio/library-service/internal/repository"
)

// CatalogHandler serves the public catalog views through the catalog
// service.  The fetchers never fail, so every endpoint here answers 200
// with a renderable list even when the backend is down.
type CatalogHandler struct {
	Svc        *catalog.Service
	Books      *repository.BookRepo
	Categories *repository.CategoryRepo
}

func NewCatalogHandler(svc *catalog.Service, books *repository.BookRepo, cats *repository.CategoryRepo) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Books: books, Categories: cats}
}

// ListBooks returns the catalog books.  ?title= narrows the result.
func (h *CatalogHandler) ListBooks(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	return c.JSON(http.StatusOK, h.Svc.FetchBooks(ctx, c.QueryParam("title")))
}

// ListCategories returns the book categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	return c.JSON(http.StatusOK, h.Svc.FetchCategories(ctx))
}

// ListTheses returns the archived theses.
func (h *CatalogHandler) ListTheses(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	return c.JSON(http.StatusOK, h.Svc.FetchTheses(ctx))
}

type createBookReq struct {
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	ISBN       string  `json:"isbn"`
	CategoryID *uint64 `json:"category_id"`
	Quantity   uint32  `json:"quantity"`
}

// CreateBook inserts a catalog book.  The catalog-edit surface is
// deliberately open; see policy.CanManageBooks.
func (h *CatalogHandler) CreateBook(c echo.Context) error {
	if !policy.CanManageBooks(currentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if h.Books == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog is read-only in demo mode"})
	}
	var req createBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == "" || req.Author == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/author required"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Books.Create(ctx, model.Book{
		Title:      req.Title,
		Author:     req.Author,
		ISBN:       req.ISBN,
		CategoryID: req.CategoryID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create book failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

type createCategoryReq struct {
	Name string `json:"name"`
}

// CreateCategory inserts a book category.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	if h.Categories == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog is read-only in demo mode"})
	}
	var req createCategoryReq
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Categories.Create(ctx, req.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create category failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}
