package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/utmbiblio/library-service/internal/model"
	"github.com/utmbiblio/library-service/internal/policy"
	"github.com/utmbiblio/library-service/internal/seed"
)

// ErrSignInRequired is returned (wrapped) by DeleteThesis when the caller
// has no active session and no bypass applies.
var ErrSignInRequired = errors.New("you must sign in to delete a thesis")

// SessionChecker answers whether the caller currently holds an active
// session.  The live implementation consults the refresh-token table; a
// lookup failure is distinct from "no session" and aborts the operation.
type SessionChecker interface {
	HasActiveSession(ctx context.Context, u *model.User) (bool, error)
}

// EventPublisher pushes a thesis-deleted event to the message broker.
// Publishing is best effort; failures are logged and never surface to the
// caller.
type EventPublisher interface {
	ThesisDeleted(ctx context.Context, id string, actor string)
}

// Service exposes the catalog fetchers and the thesis mutator.  Fetchers
// never fail: on a backend error or an empty result they substitute the
// seed data, so callers always receive a renderable sequence.  The mutator
// enforces the authentication policy and reports all failures through one
// wrapped error.
type Service struct {
	src      Source
	sessions SessionChecker
	events   EventPublisher
	demoMode bool
}

// NewService wires a Service.  events may be nil when no broker is
// configured.
func NewService(src Source, sessions SessionChecker, events EventPublisher, demoMode bool) *Service {
	return &Service{src: src, sessions: sessions, events: events, demoMode: demoMode}
}

// IsBackendID reports whether id has the canonical UUID shape
// (8-4-4-4-12 hexadecimal groups).  Records with any other identifier are
// demo records that exist only in the seed store.
func IsBackendID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// FetchBooks returns the catalog books, optionally filtered by title.
func (s *Service) FetchBooks(ctx context.Context, titleFilter string) []model.Book {
	rows, err := s.src.ListBooks(ctx, titleFilter)
	if err != nil {
		log.Printf("catalog: book query failed, serving seed data: %v", err)
		return seed.Books()
	}
	if len(rows) == 0 && titleFilter == "" {
		return seed.Books()
	}
	return rows
}

// FetchCategories returns the book categories.
func (s *Service) FetchCategories(ctx context.Context) []model.Category {
	rows, err := s.src.ListCategories(ctx)
	if err != nil {
		log.Printf("catalog: category query failed, serving seed data: %v", err)
		return seed.Categories()
	}
	if len(rows) == 0 {
		return seed.Categories()
	}
	return rows
}

// FetchTheses returns the archived theses.  A query error is logged and
// recovered with the seed data; an empty result is treated as an
// empty-database bootstrap case, not an error, and also yields the seed
// data.
func (s *Service) FetchTheses(ctx context.Context) []model.Thesis {
	rows, err := s.src.ListTheses(ctx)
	if err != nil {
		log.Printf("catalog: thesis query failed, serving seed data: %v", err)
		return seed.Theses()
	}
	if len(rows) == 0 {
		return seed.Theses()
	}
	return rows
}

// FetchLoans returns the loan records.
func (s *Service) FetchLoans(ctx context.Context) []model.Loan {
	rows, err := s.src.ListLoans(ctx)
	if err != nil {
		log.Printf("catalog: loan query failed, serving seed data: %v", err)
		return seed.Loans()
	}
	if len(rows) == 0 {
		return seed.Loans()
	}
	return rows
}

// DeleteThesis removes a thesis on behalf of user (nil when the caller is
// anonymous).  The call sequence is fixed: session lookup, bypass check,
// sign-in gate, identifier classification, backend delete.  Demo
// identifiers short-circuit into a successful no-op after the gate.  Every
// failure is normalized into a single "failed to delete thesis" error.
func (s *Service) DeleteThesis(ctx context.Context, id string, user *model.User) error {
	if err := s.deleteThesis(ctx, id, user); err != nil {
		return fmt.Errorf("failed to delete thesis: %w", err)
	}
	return nil
}

func (s *Service) deleteThesis(ctx context.Context, id string, user *model.User) error {
	active, err := s.sessions.HasActiveSession(ctx, user)
	if err != nil {
		return fmt.Errorf("authentication error: %s", err.Error())
	}
	bypass := policy.CanBypassAuthentication(user, s.demoMode)
	if !active && !bypass {
		return ErrSignInRequired
	}
	if !IsBackendID(id) {
		// Demo records only exist in the seed store; treat the delete as
		// already satisfied so the UI can remove them without a backend
		// round-trip.
		log.Printf("catalog: thesis %q is a demo record, delete is a no-op", id)
		return nil
	}
	if err := s.src.DeleteThesis(ctx, id); err != nil {
		return fmt.Errorf("backend delete: %w", err)
	}
	if s.events != nil {
		actor := ""
		if user != nil {
			actor = user.Email
		}
		s.events.ThesisDeleted(ctx, id, actor)
	}
	return nil
}
