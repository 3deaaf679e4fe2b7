package model

import "time"

// Loan statuses stored in the loans.status column.
const (
	LoanActive   = "ACTIVE"
	LoanReturned = "RETURNED"
	LoanOverdue  = "OVERDUE"
)

// Loan records a patron borrowing a physical book.  List queries
// join the book title and the borrower's email so the dashboard and
// staff views do not need extra lookups.  Maps to the `loans` table.
//
// Fields:
//  ID         – primary key identifier.
//  BookID     – book being borrowed.
//  BookTitle  – title of the borrowed book, populated by joined
//               list queries.
//  UserID     – patron who borrowed the book.
//  UserEmail  – borrower's email, populated by joined list queries.
//  Status     – state of the loan (ACTIVE, RETURNED, OVERDUE).
//  LoanedAt   – when the copy left the shelf.
//  DueAt      – return deadline.
//  ReturnedAt – when the copy came back (nil while outstanding).
type Loan struct {
	ID         uint64     `json:"id"`                    // loans.id
	BookID     uint64     `json:"book_id"`               // loans.book_id
	BookTitle  string     `json:"book_title,omitempty"`  // books.title via join
	UserID     uint64     `json:"user_id"`               // loans.user_id
	UserEmail  string     `json:"user_email,omitempty"`  // users.email via join
	Status     string     `json:"status"`                // loans.status
	LoanedAt   time.Time  `json:"loaned_at"`             // loans.loaned_at
	DueAt      time.Time  `json:"due_at"`                // loans.due_at
	ReturnedAt *time.Time `json:"returned_at,omitempty"` // loans.returned_at (nullable)
}
