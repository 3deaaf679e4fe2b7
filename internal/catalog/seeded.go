package catalog

import (
	"context"
	"strings"

	"github.com/utmbiblio/library-service/internal/model"
	"github.com/utmbiblio/library-service/internal/repository"
	"github.com/utmbiblio/library-service/internal/seed"
)

// SeededSource serves everything from the in-memory demo store.  It is
// selected at wiring time when the service runs without a database
// (demo deployments and local development).  Deletes never touch seed
// records: those are handled as no-ops before the source is consulted,
// so any id reaching DeleteThesis here cannot exist.
type SeededSource struct{}

// NewSeededSource returns the demo-store Source.
func NewSeededSource() *SeededSource { return &SeededSource{} }

func (s *SeededSource) ListBooks(ctx context.Context, titleFilter string) ([]model.Book, error) {
	books := seed.Books()
	f := strings.ToLower(strings.TrimSpace(titleFilter))
	if f == "" {
		return books, nil
	}
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), f) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *SeededSource) ListCategories(ctx context.Context) ([]model.Category, error) {
	return seed.Categories(), nil
}

func (s *SeededSource) ListTheses(ctx context.Context) ([]model.Thesis, error) {
	return seed.Theses(), nil
}

func (s *SeededSource) ListLoans(ctx context.Context) ([]model.Loan, error) {
	return seed.Loans(), nil
}

func (s *SeededSource) DeleteThesis(ctx context.Context, id string) error {
	return repository.ErrNotFound
}
