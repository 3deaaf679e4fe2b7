package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utmbiblio/library-service/internal/model"
)

func newThesisRepo(t *testing.T) (*ThesisRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewThesisRepo(db), mock
}

var thesisCols = []string{"id", "title", "author", "career", "anio", "director", "summary", "tipo", "disponible", "archivo_pdf", "created_at"}

func TestThesisListAllAppliesDefaults(t *testing.T) {
	repo, mock := newThesisRepo(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM theses").WillReturnRows(
		sqlmock.NewRows(thesisCols).
			// Fully populated row.
			AddRow("3f2c9b1e-8a4d-4c6f-9e2a-71b0c5d84f13", "Tesis A", "Autor A", "Computación",
				2023, "Dr. X", "resumen", model.DegreeMaestria, true, "tesis-a.pdf", created).
			// Row with every nullable column absent.
			AddRow("b7d21a40-55e3-4f0b-8c9d-2e6f13a7c901", "Tesis B", "Autor B", "Electrónica",
				nil, "Dra. Y", nil, nil, nil, nil, created))

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 2023, got[0].Year)
	assert.Equal(t, model.DegreeMaestria, got[0].Degree)
	assert.Equal(t, "tesis-a.pdf", got[0].FileRef)

	// Defaults: year 0, degree licenciatura, available true, no file ref.
	assert.Equal(t, 0, got[1].Year)
	assert.Equal(t, model.DegreeLicenciatura, got[1].Degree)
	assert.True(t, got[1].Available)
	assert.Empty(t, got[1].Summary)
	assert.Empty(t, got[1].FileRef)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestThesisListAllExplicitFalseAvailabilityKept(t *testing.T) {
	repo, mock := newThesisRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM theses").WillReturnRows(
		sqlmock.NewRows(thesisCols).
			AddRow("3f2c9b1e-8a4d-4c6f-9e2a-71b0c5d84f13", "Tesis", "Autor", "Diseño",
				2020, "Dr. Z", nil, model.DegreeDoctorado, false, nil, time.Now()))

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Available, "a stored false must not be defaulted to true")
}

func TestThesisDeleteByID(t *testing.T) {
	repo, mock := newThesisRepo(t)
	const id = "3f2c9b1e-8a4d-4c6f-9e2a-71b0c5d84f13"

	t.Run("deletes the matching row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM theses").WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.DeleteByID(context.Background(), id))
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM theses").WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))
		err := repo.DeleteByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
