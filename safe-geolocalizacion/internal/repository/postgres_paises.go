package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-geolocalizacion/internal/domain"
)

// PostgresPaisRepository implements PaisRepository
type PostgresPaisRepository struct {
	db *sql.DB
}

func NewPostgresPaisRepository(db *sql.DB) *PostgresPaisRepository {
	return &PostgresPaisRepository{db: db}
}

var _ PaisRepository = (*PostgresPaisRepository)(nil)

const paisColumns = `id_pais, nombre, codigo_iso`

func scanPais(s database.RowScanner) (domain.Pais, error) {
	var p domain.Pais
	err := s.Scan(&p.IDPais, &p.Nombre, &p.CodigoISO)
	return p, err
}

func (r *PostgresPaisRepository) FindAll(ctx context.Context) ([]domain.Pais, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+paisColumns+` FROM pais ORDER BY id_pais`)
	if err != nil {
		return nil, fmt.Errorf("failed to query paises: %w", err)
	}
	return database.CollectRows(rows, scanPais)
}

func (r *PostgresPaisRepository) FindByID(ctx context.Context, id int64) (*domain.Pais, error) {
	p, err := scanPais(r.db.QueryRowContext(ctx, `SELECT `+paisColumns+` FROM pais WHERE id_pais = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("pais", id)
		}
		return nil, fmt.Errorf("failed to query pais: %w", err)
	}
	return &p, nil
}

func (r *PostgresPaisRepository) Create(ctx context.Context, p *domain.Pais) (*domain.Pais, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO pais (nombre, codigo_iso) VALUES ($1, $2) RETURNING id_pais`,
		p.Nombre, p.CodigoISO,
	).Scan(&p.IDPais)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "pais")
	}
	return p, nil
}

func (r *PostgresPaisRepository) Update(ctx context.Context, p *domain.Pais) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pais SET nombre = $1, codigo_iso = $2 WHERE id_pais = $3`,
		p.Nombre, p.CodigoISO, p.IDPais,
	)
	return checkAffected(res, err, errs.OpUpdate, "pais", p.IDPais)
}

func (r *PostgresPaisRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pais WHERE id_pais = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "pais", id)
}
