package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/utmbiblio/library-service/internal/model"
)

// BookRepo provides read and write access to the `books` table.  List
// queries join the category name so the catalog view does not need a
// second lookup.
type BookRepo struct {
	db *sql.DB
}

// NewBookRepo returns a BookRepo bound to the given database.
func NewBookRepo(db *sql.DB) *BookRepo { return &BookRepo{db: db} }

// ListAll returns all books with their category name joined in.  An
// optional title filter narrows the result with a LIKE match.
func (r *BookRepo) ListAll(ctx context.Context, titleFilter string) ([]model.Book, error) {
	q := `SELECT b.id, b.title, b.author, b.isbn, b.category_id, c.name,
	             b.quantity, b.available, b.created_at, b.updated_at
	      FROM books b
	      LEFT JOIN categories c ON c.id = b.category_id`
	args := []interface{}{}
	if s := strings.TrimSpace(titleFilter); s != "" {
		q += " WHERE b.title LIKE ?"
		args = append(args, "%"+s+"%")
	}
	q += " ORDER BY b.title"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Book, 0)
	for rows.Next() {
		var (
			b       model.Book
			catID   sql.NullInt64
			catName sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &catID, &catName,
			&b.Quantity, &b.Available, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		if catID.Valid {
			id := uint64(catID.Int64)
			b.CategoryID = &id
		}
		if catName.Valid {
			b.CategoryName = catName.String
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a book and returns its generated ID.
func (r *BookRepo) Create(ctx context.Context, b model.Book) (uint64, error) {
	var catID interface{}
	if b.CategoryID != nil {
		catID = *b.CategoryID
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO books (title, author, isbn, category_id, quantity, available) VALUES (?,?,?,?,?,?)",
		b.Title, b.Author, b.ISBN, catID, b.Quantity, b.Quantity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single book without the category join.
func (r *BookRepo) GetByID(ctx context.Context, id uint64) (model.Book, error) {
	var (
		b     model.Book
		catID sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, author, isbn, category_id, quantity, available, created_at, updated_at FROM books WHERE id=? LIMIT 1",
		id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &catID, &b.Quantity, &b.Available, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Book{}, err
	}
	if catID.Valid {
		cid := uint64(catID.Int64)
		b.CategoryID = &cid
	}
	return b, nil
}

// CountAll returns the number of catalog books; used by the dashboard.
func (r *BookRepo) CountAll(ctx context.Context) (uint64, error) {
	var n uint64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&n)
	return n, err
}
