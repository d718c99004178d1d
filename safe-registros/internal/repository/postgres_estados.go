package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-registros/internal/domain"
)

// PostgresEstadoRepository implements EstadoRepository
type PostgresEstadoRepository struct {
	db *sql.DB
}

func NewPostgresEstadoRepository(db *sql.DB) *PostgresEstadoRepository {
	return &PostgresEstadoRepository{db: db}
}

var _ EstadoRepository = (*PostgresEstadoRepository)(nil)

const estadoColumns = `id_estado, nombre, COALESCE(descripcion, '')`

func scanEstado(s database.RowScanner) (domain.Estado, error) {
	var e domain.Estado
	err := s.Scan(&e.IDEstado, &e.Nombre, &e.Descripcion)
	return e, err
}

func (r *PostgresEstadoRepository) FindAll(ctx context.Context) ([]domain.Estado, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+estadoColumns+` FROM estado ORDER BY id_estado`)
	if err != nil {
		return nil, fmt.Errorf("failed to query estados: %w", err)
	}
	return database.CollectRows(rows, scanEstado)
}

func (r *PostgresEstadoRepository) FindByID(ctx context.Context, id int64) (*domain.Estado, error) {
	e, err := scanEstado(r.db.QueryRowContext(ctx, `SELECT `+estadoColumns+` FROM estado WHERE id_estado = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("estado", id)
		}
		return nil, fmt.Errorf("failed to query estado: %w", err)
	}
	return &e, nil
}

func (r *PostgresEstadoRepository) Create(ctx context.Context, e *domain.Estado) (*domain.Estado, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO estado (nombre, descripcion) VALUES ($1, NULLIF($2, '')) RETURNING id_estado`,
		e.Nombre, e.Descripcion,
	).Scan(&e.IDEstado)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "estado")
	}
	return e, nil
}

func (r *PostgresEstadoRepository) Update(ctx context.Context, e *domain.Estado) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE estado SET nombre = $1, descripcion = NULLIF($2, '') WHERE id_estado = $3`,
		e.Nombre, e.Descripcion, e.IDEstado,
	)
	return checkAffected(res, err, errs.OpUpdate, "estado", e.IDEstado)
}

func (r *PostgresEstadoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM estado WHERE id_estado = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "estado", id)
}
