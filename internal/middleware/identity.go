package middleware

// identity.go provides the user-identity lookup shared by the middleware
// in this package.  The rate limiter keys buckets per user when a JWT has
// been validated earlier in the chain; anonymous requests share the
// "anon" identity.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID extracts a user identifier from the request context.  It
// returns "anon" when no user is authenticated.
func currentUserID(c echo.Context) string {
	if v := c.Get("user_id"); v != nil {
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return fmt.Sprintf("%.0f", t)
		}
	}
	return "anon"
}
