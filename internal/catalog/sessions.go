package catalog

import (
	"context"

	"github.com/utmbiblio/library-service/internal/model"
	"github.com/utmbiblio/library-service/internal/repository"
)

// TokenSessions checks for an active session by looking for a live
// refresh token belonging to the user.  An absent user trivially has no
// session; a database failure is reported as an error so the mutator can
// distinguish "could not check" from "not signed in".
type TokenSessions struct {
	Tokens *repository.TokenRepo
}

// NewTokenSessions returns a SessionChecker backed by the token table.
func NewTokenSessions(t *repository.TokenRepo) *TokenSessions {
	return &TokenSessions{Tokens: t}
}

func (s *TokenSessions) HasActiveSession(ctx context.Context, u *model.User) (bool, error) {
	if u == nil {
		return false, nil
	}
	return s.Tokens.HasActiveForUser(ctx, u.ID)
}

// NoSessions is the SessionChecker used by seeded deployments, which have
// no token table.  Every caller is session-less; demo mode supplies the
// bypass instead.
type NoSessions struct{}

func (NoSessions) HasActiveSession(ctx context.Context, u *model.User) (bool, error) {
	return false, nil
}
