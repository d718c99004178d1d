package repository

import (
	"context"
	"testing"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-registros/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriaCreate_ReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresCategoriaRepository(db)

	mock.ExpectQuery(`INSERT INTO categoria \(nombre, descripcion\) VALUES \(\$1, NULLIF\(\$2, ''\)\) RETURNING id_categoria`).
		WithArgs("Incendio", "").
		WillReturnRows(sqlmock.NewRows([]string{"id_categoria"}).AddRow(4))

	c, err := repo.Create(context.Background(), &domain.Categoria{Nombre: "Incendio"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), c.IDCategoria)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoriaCreate_DuplicateNombre(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresCategoriaRepository(db)

	mock.ExpectQuery(`INSERT INTO categoria`).
		WithArgs("Incendio", "").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.Create(context.Background(), &domain.Categoria{Nombre: "Incendio"})
	assert.ErrorIs(t, err, errs.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoriaDelete_InUse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresCategoriaRepository(db)

	mock.ExpectExec(`DELETE FROM categoria WHERE id_categoria = \$1`).
		WithArgs(int64(2)).
		WillReturnError(&pq.Error{Code: "23503"})

	assert.ErrorIs(t, repo.Delete(context.Background(), 2), errs.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoriaFindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresCategoriaRepository(db)

	mock.ExpectQuery(`FROM categoria WHERE id_categoria = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id_categoria", "nombre", "descripcion"}))

	_, err = repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
