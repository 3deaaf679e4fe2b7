// Package queue defines message payloads exchanged over the message broker.
package queue

// LoanCreatedEvent is published when a patron borrows a book.  It carries
// enough information for downstream consumers to log or notify without
// querying the primary database.
type LoanCreatedEvent struct {
	LoanID    uint64 `json:"loan_id"`
	BookID    uint64 `json:"book_id"`
	BookTitle string `json:"book_title"`
	UserID    uint64 `json:"user_id"`
	UserEmail string `json:"user_email"`
	DueAt     string `json:"due_at"`
	LoanedAt  string `json:"loaned_at"`
}

// ThesisDeletedEvent is published when a persisted thesis is removed from
// the archive.  Demo-record no-op deletions are never published.
type ThesisDeletedEvent struct {
	ThesisID  string `json:"thesis_id"`
	Actor     string `json:"actor"` // email of the deleting user, may be empty
	DeletedAt string `json:"deleted_at"`
}
