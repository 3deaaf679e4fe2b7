package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/utmbiblio/library-service/internal/catalog"
	"github.com/utmbiblio/library-service/internal/model"
	"github.com/utmbiblio/library-service/internal/policy"
	"github.com/utmbiblio/library-service/internal/repository"
)

// ThesisHandler manages the thesis archive.  Reads go through the catalog
// service; deletes go through its gated mutator.
type ThesisHandler struct {
	Svc    *catalog.Service
	Theses *repository.ThesisRepo
}

func NewThesisHandler(svc *catalog.Service, theses *repository.ThesisRepo) *ThesisHandler {
	return &ThesisHandler{Svc: svc, Theses: theses}
}

type createThesisReq struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Career    string `json:"career"`
	Year      int    `json:"year"`
	Director  string `json:"director"`
	Summary   string `json:"summary"`
	Degree    string `json:"degree"` // LICENCIATURA | MAESTRIA | DOCTORADO
	Available *bool  `json:"available"`
	FileRef   string `json:"file_ref"`
}

// Create inserts a thesis keyed by a fresh UUID.  Staff only.
func (h *ThesisHandler) Create(c echo.Context) error {
	if !policy.CanManageTheses(currentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if h.Theses == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "archive is read-only in demo mode"})
	}
	var req createThesisReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == "" || req.Author == "" || req.Career == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/author/career required"})
	}
	switch req.Degree {
	case "":
		req.Degree = model.DegreeLicenciatura
	case model.DegreeLicenciatura, model.DegreeMaestria, model.DegreeDoctorado:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid degree"})
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	th := model.Thesis{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Author:    req.Author,
		Career:    req.Career,
		Year:      req.Year,
		Director:  req.Director,
		Summary:   req.Summary,
		Degree:    req.Degree,
		Available: available,
		FileRef:   req.FileRef,
	}
	if err := h.Theses.Create(ctx, th); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create thesis failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": th.ID})
}

// Delete removes a thesis through the gated mutator.  The caller's
// identity is passed explicitly; the mutator decides whether the session
// requirement holds, whether the ID is a demo record, and what a failure
// looks like.
func (h *ThesisHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "thesis id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Svc.DeleteThesis(ctx, id, currentUser(c)); err != nil {
		switch {
		case errors.Is(err, catalog.ErrSignInRequired):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
