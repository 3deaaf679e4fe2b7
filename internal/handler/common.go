package handler

// common.go holds the identity helpers shared by the handlers: JWT claims
// are stashed in the echo context by the JWTAuth middleware and pulled
// back out here.  The catalog mutator takes the user as an explicit
// argument, so handlers materialize a model.User from the claims instead
// of letting lower layers reach into the request context.

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/utmbiblio/library-service/internal/model"
)

var errNoIdentity = errors.New("no authenticated user in context")

// getUserID extracts the numeric user ID stored by JWTAuth.  JWT numbers
// decode as float64; string subjects are parsed for robustness.
func getUserID(c echo.Context) (uint64, error) {
	switch v := c.Get("user_id").(type) {
	case float64:
		return uint64(v), nil
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errNoIdentity
}

// currentUser builds a model.User from the JWT claims, or nil when the
// request is anonymous.  Only the fields the permission predicates read
// (ID, email, role) are populated.
func currentUser(c echo.Context) *model.User {
	id, err := getUserID(c)
	if err != nil {
		return nil
	}
	u := &model.User{ID: id}
	if email, ok := c.Get("email").(string); ok {
		u.Email = email
	}
	if role, ok := c.Get("role").(string); ok {
		u.Role = role
	}
	return u
}
