package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-perfiles/internal/domain"
)

// PostgresEquipoRepository implements EquipoRepository
type PostgresEquipoRepository struct {
	db *sql.DB
}

func NewPostgresEquipoRepository(db *sql.DB) *PostgresEquipoRepository {
	return &PostgresEquipoRepository{db: db}
}

var _ EquipoRepository = (*PostgresEquipoRepository)(nil)

const equipoColumns = `id_equipo, nombre, id_compania, id_lider, id_estado`

func scanEquipo(s database.RowScanner) (domain.Equipo, error) {
	var e domain.Equipo
	var lider sql.NullInt64
	err := s.Scan(&e.IDEquipo, &e.Nombre, &e.IDCompania, &lider, &e.IDEstado)
	e.IDLider = database.Int64Ptr(lider)
	return e, err
}

func (r *PostgresEquipoRepository) FindAll(ctx context.Context) ([]domain.Equipo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+equipoColumns+` FROM equipo ORDER BY id_equipo`)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipos: %w", err)
	}
	return database.CollectRows(rows, scanEquipo)
}

func (r *PostgresEquipoRepository) FindByCompania(ctx context.Context, idCompania int64) ([]domain.Equipo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+equipoColumns+` FROM equipo WHERE id_compania = $1 ORDER BY id_equipo`, idCompania)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipos by compania: %w", err)
	}
	return database.CollectRows(rows, scanEquipo)
}

func (r *PostgresEquipoRepository) FindByID(ctx context.Context, id int64) (*domain.Equipo, error) {
	e, err := scanEquipo(r.db.QueryRowContext(ctx, `SELECT `+equipoColumns+` FROM equipo WHERE id_equipo = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("equipo", id)
		}
		return nil, fmt.Errorf("failed to query equipo: %w", err)
	}
	return &e, nil
}

func (r *PostgresEquipoRepository) Create(ctx context.Context, e *domain.Equipo) (*domain.Equipo, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO equipo (nombre, id_compania, id_lider, id_estado) VALUES ($1, $2, $3, $4) RETURNING id_equipo`,
		e.Nombre, e.IDCompania, database.NullInt64(e.IDLider), e.IDEstado,
	).Scan(&e.IDEquipo)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "equipo")
	}
	return e, nil
}

func (r *PostgresEquipoRepository) Update(ctx context.Context, e *domain.Equipo) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE equipo SET nombre = $1, id_compania = $2, id_lider = $3, id_estado = $4 WHERE id_equipo = $5`,
		e.Nombre, e.IDCompania, database.NullInt64(e.IDLider), e.IDEstado, e.IDEquipo,
	)
	return checkAffected(res, err, errs.OpUpdate, "equipo", e.IDEquipo)
}

func (r *PostgresEquipoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipo WHERE id_equipo = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "equipo", id)
}
