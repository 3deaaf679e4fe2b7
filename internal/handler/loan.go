package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/utmbiblio/library-service/internal/catalog"
	"github.com/utmbiblio/library-service/internal/policy"
	"github.com/utmbiblio/library-service/internal/queue"
	"github.com/utmbiblio/library-service/internal/repository"
	queuepub "github.com/utmbiblio/library-service/internal/service"
)

const defaultLoanDays = 14

// LoanHandler manages borrowing and returning books.
type LoanHandler struct {
	Svc   *catalog.Service
	Loans *repository.LoanRepo
	Books *repository.BookRepo
}

func NewLoanHandler(svc *catalog.Service, loans *repository.LoanRepo, books *repository.BookRepo) *LoanHandler {
	return &LoanHandler{Svc: svc, Loans: loans, Books: books}
}

type createLoanReq struct {
	BookID uint64 `json:"book_id"`
	Days   int    `json:"days"` // optional, defaults to 14
}

// Create borrows one copy of a book for the authenticated patron.  On
// success a loan.created event is published best-effort.
func (h *LoanHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil || req.BookID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "book_id required"})
	}
	days := req.Days
	if days <= 0 || days > 90 {
		days = defaultLoanDays
	}
	due := time.Now().UTC().AddDate(0, 0, days)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	loanID, err := h.Loans.Create(ctx, req.BookID, uid, due)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "no copies available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create loan failed"})
		}
	}

	// Enrich the event with the book title; a lookup failure only degrades
	// the event payload, never the response.
	title := ""
	if b, err := h.Books.GetByID(ctx, req.BookID); err == nil {
		title = b.Title
	}
	email, _ := c.Get("email").(string)
	_ = queuepub.PublishLoanCreated(ctx, queue.LoanCreatedEvent{
		LoanID:    loanID,
		BookID:    req.BookID,
		BookTitle: title,
		UserID:    uid,
		UserEmail: email,
		DueAt:     due.Format(time.RFC3339),
		LoanedAt:  time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"id": loanID, "due_at": due})
}

// Mine lists the authenticated patron's loans.
func (h *LoanHandler) Mine(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	loans, err := h.Loans.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, loans)
}

// All lists every loan through the catalog fetcher.  Staff only.
func (h *LoanHandler) All(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	return c.JSON(http.StatusOK, h.Svc.FetchLoans(ctx))
}

// Return marks a loan returned.  Patrons may only return their own loans;
// staff may return any.
func (h *LoanHandler) Return(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var loanID uint64
	if err := echo.PathParamsBinder(c).Uint64("id", &loanID).BindError(); err != nil || loanID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid loan id"})
	}
	staff := policy.IsLibraryStaff(currentUser(c))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Loans.Return(ctx, loanID, uid, staff); err != nil {
		switch err {
		case sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "loan not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not your loan"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "loan already returned"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "return failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
