package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utmbiblio/library-service/internal/catalog"
	"github.com/utmbiblio/library-service/internal/model"
)

func TestListTheses_AlwaysRenders(t *testing.T) {
	svc := catalog.NewService(catalog.NewSeededSource(), catalog.NoSessions{}, nil, true)
	h := NewCatalogHandler(svc, nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/theses", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListTheses(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var theses []model.Thesis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &theses))
	assert.NotEmpty(t, theses)
}

func TestListBooks_TitleFilter(t *testing.T) {
	svc := catalog.NewService(catalog.NewSeededSource(), catalog.NoSessions{}, nil, true)
	h := NewCatalogHandler(svc, nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/books?title=zzz-no-such-title", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListBooks(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	// A filtered miss stays empty instead of falling back to the full
	// seed list.
	var books []model.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	assert.Empty(t, books)
}

func TestCreateBook_ReadOnlyWithoutDatabase(t *testing.T) {
	svc := catalog.NewService(catalog.NewSeededSource(), catalog.NoSessions{}, nil, true)
	h := NewCatalogHandler(svc, nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/books", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateBook(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
