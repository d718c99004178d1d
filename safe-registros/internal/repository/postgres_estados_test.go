package repository

import (
	"context"
	"database/sql"
	"testing"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-registros/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockEstadoDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresEstadoRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewPostgresEstadoRepository(db)
}

func TestEstadoFindAll_Success(t *testing.T) {
	db, mock, repo := setupMockEstadoDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id_estado, nombre, COALESCE\(descripcion, ''\) FROM estado ORDER BY id_estado`).
		WillReturnRows(sqlmock.NewRows([]string{"id_estado", "nombre", "descripcion"}).
			AddRow(1, "Activo", "").
			AddRow(2, "Inactivo", "dado de baja"))

	estados, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, estados, 2)
	assert.Equal(t, "Inactivo", estados[1].Nombre)
	assert.Equal(t, "dado de baja", estados[1].Descripcion)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEstadoFindByID_NotFound(t *testing.T) {
	db, mock, repo := setupMockEstadoDB(t)
	defer db.Close()

	mock.ExpectQuery(`FROM estado WHERE id_estado = \$1`).
		WithArgs(int64(3)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 3)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEstadoCreate_Duplicate(t *testing.T) {
	db, mock, repo := setupMockEstadoDB(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO estado`).
		WithArgs("Activo", "").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "estado_nombre_key"})

	_, err := repo.Create(context.Background(), &domain.Estado{Nombre: "Activo"})
	assert.ErrorIs(t, err, errs.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEstadoDelete_InUse(t *testing.T) {
	db, mock, repo := setupMockEstadoDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM estado WHERE id_estado = \$1`).
		WithArgs(int64(1)).
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, errs.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
