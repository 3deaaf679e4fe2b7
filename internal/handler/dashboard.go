package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/utmbiblio/library-service/internal/policy"
	"github.com/utmbiblio/library-service/internal/repository"
)

// DashboardHandler serves the staff overview numbers and the user list.
type DashboardHandler struct {
	Books *repository.BookRepo
	Loans *repository.LoanRepo
	Users *repository.UserRepo
}

func NewDashboardHandler(b *repository.BookRepo, l *repository.LoanRepo, u *repository.UserRepo) *DashboardHandler {
	return &DashboardHandler{Books: b, Loans: l, Users: u}
}

// Stats returns the book count and loans grouped by month for the last
// twelve months.
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	books, err := h.Books.CountAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count failed"})
	}
	byMonth, err := h.Loans.CountByMonth(ctx, 12)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"books":          books,
		"loans_by_month": byMonth,
	})
}

// ListUsers returns all accounts without password hashes.  Gated on the
// user-management predicate on top of the route's role middleware.
func (h *DashboardHandler) ListUsers(c echo.Context) error {
	if !policy.CanManageUsers(currentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]userRow, 0, len(users))
	for _, u := range users {
		out = append(out, userRow{
			ID:        u.ID,
			Email:     u.Email,
			Role:      u.Role,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// userRow is the account shape exposed to staff; password hashes never
// leave the repository layer.
type userRow struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
