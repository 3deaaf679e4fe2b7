package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/utmbiblio/library-service/internal/model"
)

// ThesisRepo provides read and write access to the `theses` table.
// Thesis rows are keyed by UUID strings generated at insert time; the
// repository never sees the demo identifiers served by the seed store.
type ThesisRepo struct {
	db *sql.DB
}

// NewThesisRepo returns a ThesisRepo bound to the given database.
func NewThesisRepo(db *sql.DB) *ThesisRepo { return &ThesisRepo{db: db} }

// ListAll returns every archived thesis ordered by creation time
// descending (newest first).  Nullable columns are mapped to their
// zero values so callers never deal with sql.Null* types.
func (r *ThesisRepo) ListAll(ctx context.Context) ([]model.Thesis, error) {
	const q = `SELECT id, title, author, career, anio, director, summary, tipo, disponible, archivo_pdf, created_at
	           FROM theses
	           ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Thesis, 0)
	for rows.Next() {
		var (
			th      model.Thesis
			year    sql.NullInt64
			summary sql.NullString
			degree  sql.NullString
			avail   sql.NullBool
			fileRef sql.NullString
		)
		if err := rows.Scan(&th.ID, &th.Title, &th.Author, &th.Career,
			&year, &th.Director, &summary, &degree, &avail, &fileRef, &th.CreatedAt); err != nil {
			return nil, err
		}
		// Field defaults: missing year -> 0, missing degree -> licenciatura,
		// availability is true unless the row explicitly stores false.
		if year.Valid {
			th.Year = int(year.Int64)
		}
		if summary.Valid {
			th.Summary = summary.String
		}
		if degree.Valid && degree.String != "" {
			th.Degree = degree.String
		} else {
			th.Degree = model.DegreeLicenciatura
		}
		if avail.Valid {
			th.Available = avail.Bool
		} else {
			th.Available = true
		}
		if fileRef.Valid {
			th.FileRef = fileRef.String
		}
		out = append(out, th)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a thesis row keyed by the caller-supplied UUID.
func (r *ThesisRepo) Create(ctx context.Context, th model.Thesis) error {
	const q = `INSERT INTO theses (id, title, author, career, anio, director, summary, tipo, disponible, archivo_pdf, created_at)
	           VALUES (?,?,?,?,?,?,?,?,?,?,?)`
	var summary, fileRef interface{}
	if th.Summary != "" {
		summary = th.Summary
	}
	if th.FileRef != "" {
		fileRef = th.FileRef
	}
	_, err := r.db.ExecContext(ctx, q,
		th.ID, th.Title, th.Author, th.Career, th.Year, th.Director,
		summary, th.Degree, th.Available, fileRef, time.Now().UTC())
	return err
}

// DeleteByID removes a thesis row by its UUID key.  ErrNotFound is
// returned when no row matched.
func (r *ThesisRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM theses WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetFileRef records the stored-file reference for a thesis.
func (r *ThesisRepo) SetFileRef(ctx context.Context, id, fileRef string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE theses SET archivo_pdf=? WHERE id=?", fileRef, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
