package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/utmbiblio/library-service/internal/model"
)

// LoanRepo provides access to the `loans` table.  Creating a loan also
// decrements the book's available counter inside one transaction, and
// returning a loan restores it.  List queries join the book title and
// the borrower's email.
type LoanRepo struct {
	db *sql.DB
}

// NewLoanRepo returns a LoanRepo bound to the given database.
func NewLoanRepo(db *sql.DB) *LoanRepo { return &LoanRepo{db: db} }

const loanSelect = `SELECT l.id, l.book_id, b.title, l.user_id, u.email,
                           l.status, l.loaned_at, l.due_at, l.returned_at
                    FROM loans l
                    JOIN books b ON b.id = l.book_id
                    JOIN users u ON u.id = l.user_id`

// scanLoan reads one joined row into a model.Loan.
func scanLoan(rows *sql.Rows) (model.Loan, error) {
	var (
		l   model.Loan
		ret sql.NullTime
	)
	if err := rows.Scan(&l.ID, &l.BookID, &l.BookTitle, &l.UserID, &l.UserEmail,
		&l.Status, &l.LoanedAt, &l.DueAt, &ret); err != nil {
		return model.Loan{}, err
	}
	if ret.Valid {
		t := ret.Time
		l.ReturnedAt = &t
	}
	return l, nil
}

// ListAll returns every loan, newest first; used by staff views and the
// catalog fetcher.
func (r *LoanRepo) ListAll(ctx context.Context) ([]model.Loan, error) {
	rows, err := r.db.QueryContext(ctx, loanSelect+" ORDER BY l.loaned_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLoans(rows)
}

// ListByUser returns the loans belonging to one patron, newest first.
func (r *LoanRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Loan, error) {
	rows, err := r.db.QueryContext(ctx,
		loanSelect+" WHERE l.user_id = ? ORDER BY l.loaned_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLoans(rows)
}

func collectLoans(rows *sql.Rows) ([]model.Loan, error) {
	out := make([]model.Loan, 0)
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create records a loan for a book copy and decrements availability in
// the same transaction.  ErrConflict is returned when no copy is on the
// shelf; ErrNotFound when the book does not exist.
func (r *LoanRepo) Create(ctx context.Context, bookID, userID uint64, due time.Time) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var available uint32
	err = tx.QueryRowContext(ctx,
		"SELECT available FROM books WHERE id=? FOR UPDATE", bookID).Scan(&available)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	if available == 0 {
		return 0, ErrConflict
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE books SET available = available - 1 WHERE id=?", bookID); err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx,
		"INSERT INTO loans (book_id, user_id, status, loaned_at, due_at) VALUES (?,?,?,?,?)",
		bookID, userID, model.LoanActive, time.Now().UTC(), due)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Return marks a loan as returned and restores the book's availability.
// The loan must belong to userID unless the caller is staff (checked in
// the handler); ErrForbidden is returned on an ownership mismatch and
// ErrConflict when the loan is not active.
func (r *LoanRepo) Return(ctx context.Context, loanID, userID uint64, staff bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var (
		bookID  uint64
		ownerID uint64
		status  string
	)
	err = tx.QueryRowContext(ctx,
		"SELECT book_id, user_id, status FROM loans WHERE id=? FOR UPDATE", loanID).
		Scan(&bookID, &ownerID, &status)
	if err != nil {
		return err
	}
	if !staff && ownerID != userID {
		return ErrForbidden
	}
	if status != model.LoanActive && status != model.LoanOverdue {
		return ErrConflict
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE loans SET status=?, returned_at=? WHERE id=?",
		model.LoanReturned, time.Now().UTC(), loanID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE books SET available = available + 1 WHERE id=?", bookID); err != nil {
		return err
	}
	return tx.Commit()
}

// CountByMonth returns loan counts grouped by calendar month for the
// dashboard, limited to the most recent `months` months.
func (r *LoanRepo) CountByMonth(ctx context.Context, months int) (map[string]uint64, error) {
	const q = `SELECT DATE_FORMAT(loaned_at, '%Y-%m') AS ym, COUNT(*)
	           FROM loans
	           WHERE loaned_at >= DATE_SUB(NOW(), INTERVAL ? MONTH)
	           GROUP BY ym`
	rows, err := r.db.QueryContext(ctx, q, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]uint64)
	for rows.Next() {
		var (
			ym string
			n  uint64
		)
		if err := rows.Scan(&ym, &n); err != nil {
			return nil, err
		}
		out[ym] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
