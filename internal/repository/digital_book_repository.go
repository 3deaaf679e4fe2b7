package repository

import (
	"context"
	"database/sql"

	"github.com/utmbiblio/library-service/internal/model"
)

// DigitalBookRepo provides access to the `digital_books` table.  List
// queries join the catalog book title.
type DigitalBookRepo struct {
	db *sql.DB
}

// NewDigitalBookRepo returns a DigitalBookRepo bound to the given database.
func NewDigitalBookRepo(db *sql.DB) *DigitalBookRepo { return &DigitalBookRepo{db: db} }

// ListAll returns every digital book with its catalog title joined in,
// newest upload first.
func (r *DigitalBookRepo) ListAll(ctx context.Context) ([]model.DigitalBook, error) {
	const q = `SELECT d.id, d.book_id, b.title, d.file_path, d.size_bytes, d.created_at
	           FROM digital_books d
	           JOIN books b ON b.id = d.book_id
	           ORDER BY d.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.DigitalBook, 0)
	for rows.Next() {
		var d model.DigitalBook
		if err := rows.Scan(&d.ID, &d.BookID, &d.BookTitle, &d.FilePath, &d.SizeBytes, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create records an uploaded file for a book and returns the generated ID.
func (r *DigitalBookRepo) Create(ctx context.Context, bookID uint64, filePath string, sizeBytes int64) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO digital_books (book_id, file_path, size_bytes) VALUES (?,?,?)",
		bookID, filePath, sizeBytes)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
