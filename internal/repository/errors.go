// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// authorized to perform an operation, while ErrConflict signals that an
// operation cannot proceed due to existing dependent records (e.g.
// deleting a book that still has active loans).
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they may not touch. Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state, such as loaning a book with no available
// copies. Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrNotFound is returned when the targeted row does not exist.  It is
// preferred over sql.ErrNoRows for Exec-style operations where no row was
// scanned. Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
