package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-incidentes/internal/domain"
)

// PostgresTipoIncidenteRepository implements TipoIncidenteRepository
type PostgresTipoIncidenteRepository struct {
	db *sql.DB
}

func NewPostgresTipoIncidenteRepository(db *sql.DB) *PostgresTipoIncidenteRepository {
	return &PostgresTipoIncidenteRepository{db: db}
}

var _ TipoIncidenteRepository = (*PostgresTipoIncidenteRepository)(nil)

func scanTipoIncidente(s database.RowScanner) (domain.TipoIncidente, error) {
	var t domain.TipoIncidente
	err := s.Scan(&t.IDTipoIncidente, &t.Nombre)
	return t, err
}

func (r *PostgresTipoIncidenteRepository) FindAll(ctx context.Context) ([]domain.TipoIncidente, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id_tipo_incidente, nombre FROM tipo_incidente ORDER BY id_tipo_incidente`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tipos de incidente: %w", err)
	}
	return database.CollectRows(rows, scanTipoIncidente)
}

func (r *PostgresTipoIncidenteRepository) FindByID(ctx context.Context, id int64) (*domain.TipoIncidente, error) {
	t, err := scanTipoIncidente(r.db.QueryRowContext(ctx,
		`SELECT id_tipo_incidente, nombre FROM tipo_incidente WHERE id_tipo_incidente = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("tipo_incidente", id)
		}
		return nil, fmt.Errorf("failed to query tipo de incidente: %w", err)
	}
	return &t, nil
}

func (r *PostgresTipoIncidenteRepository) Create(ctx context.Context, t *domain.TipoIncidente) (*domain.TipoIncidente, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tipo_incidente (nombre) VALUES ($1) RETURNING id_tipo_incidente`, t.Nombre,
	).Scan(&t.IDTipoIncidente)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "tipo_incidente")
	}
	return t, nil
}

func (r *PostgresTipoIncidenteRepository) Update(ctx context.Context, t *domain.TipoIncidente) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tipo_incidente SET nombre = $1 WHERE id_tipo_incidente = $2`, t.Nombre, t.IDTipoIncidente)
	return checkAffected(res, err, errs.OpUpdate, "tipo_incidente", t.IDTipoIncidente)
}

func (r *PostgresTipoIncidenteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tipo_incidente WHERE id_tipo_incidente = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "tipo_incidente", id)
}
