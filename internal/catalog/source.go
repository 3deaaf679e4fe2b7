// Package catalog implements the data-access layer consumed by the HTTP
// handlers: per-entity fetchers that always resolve to a usable result and
// a thesis mutator that enforces the authentication policy.  The layer
// reads through a Source so the live database and the seeded demo store
// are interchangeable at wiring time.
package catalog

import (
	"context"

	"github.com/utmbiblio/library-service/internal/model"
	"github.com/utmbiblio/library-service/internal/repository"
)

// Source is the pluggable backend behind the catalog service.  Exactly one
// implementation is selected when the process starts: LiveSource for a real
// database, SeededSource for demo deployments without one.
type Source interface {
	ListBooks(ctx context.Context, titleFilter string) ([]model.Book, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListTheses(ctx context.Context) ([]model.Thesis, error)
	ListLoans(ctx context.Context) ([]model.Loan, error)
	DeleteThesis(ctx context.Context, id string) error
}

// LiveSource serves catalog reads and thesis deletes from the MySQL
// repositories.  Row normalization (year/degree/availability defaults)
// happens in the repositories, so the service sees clean domain values.
type LiveSource struct {
	Books      *repository.BookRepo
	Categories *repository.CategoryRepo
	Theses     *repository.ThesisRepo
	Loans      *repository.LoanRepo
}

// NewLiveSource bundles the repositories into a Source.
func NewLiveSource(b *repository.BookRepo, c *repository.CategoryRepo, t *repository.ThesisRepo, l *repository.LoanRepo) *LiveSource {
	return &LiveSource{Books: b, Categories: c, Theses: t, Loans: l}
}

func (s *LiveSource) ListBooks(ctx context.Context, titleFilter string) ([]model.Book, error) {
	return s.Books.ListAll(ctx, titleFilter)
}

func (s *LiveSource) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.Categories.ListAll(ctx)
}

func (s *LiveSource) ListTheses(ctx context.Context) ([]model.Thesis, error) {
	return s.Theses.ListAll(ctx)
}

func (s *LiveSource) ListLoans(ctx context.Context) ([]model.Loan, error) {
	return s.Loans.ListAll(ctx)
}

func (s *LiveSource) DeleteThesis(ctx context.Context, id string) error {
	return s.Theses.DeleteByID(ctx, id)
}
