package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-geolocalizacion/internal/domain"
)

// PostgresRegionRepository implements RegionRepository
type PostgresRegionRepository struct {
	db *sql.DB
}

func NewPostgresRegionRepository(db *sql.DB) *PostgresRegionRepository {
	return &PostgresRegionRepository{db: db}
}

var _ RegionRepository = (*PostgresRegionRepository)(nil)

const regionColumns = `id_region, nombre, identificacion, id_pais`

func scanRegion(s database.RowScanner) (domain.Region, error) {
	var r domain.Region
	err := s.Scan(&r.IDRegion, &r.Nombre, &r.Identificacion, &r.IDPais)
	return r, err
}

func (r *PostgresRegionRepository) FindAll(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+regionColumns+` FROM region ORDER BY id_region`)
	if err != nil {
		return nil, fmt.Errorf("failed to query regiones: %w", err)
	}
	return database.CollectRows(rows, scanRegion)
}

func (r *PostgresRegionRepository) FindByPais(ctx context.Context, idPais int64) ([]domain.Region, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+regionColumns+` FROM region WHERE id_pais = $1 ORDER BY nombre`, idPais)
	if err != nil {
		return nil, fmt.Errorf("failed to query regiones by pais: %w", err)
	}
	return database.CollectRows(rows, scanRegion)
}

func (r *PostgresRegionRepository) FindByID(ctx context.Context, id int64) (*domain.Region, error) {
	reg, err := scanRegion(r.db.QueryRowContext(ctx, `SELECT `+regionColumns+` FROM region WHERE id_region = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("region", id)
		}
		return nil, fmt.Errorf("failed to query region: %w", err)
	}
	return &reg, nil
}

func (r *PostgresRegionRepository) Create(ctx context.Context, reg *domain.Region) (*domain.Region, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO region (nombre, identificacion, id_pais) VALUES ($1, $2, $3) RETURNING id_region`,
		reg.Nombre, reg.Identificacion, reg.IDPais,
	).Scan(&reg.IDRegion)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "region")
	}
	return reg, nil
}

func (r *PostgresRegionRepository) Update(ctx context.Context, reg *domain.Region) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE region SET nombre = $1, identificacion = $2, id_pais = $3 WHERE id_region = $4`,
		reg.Nombre, reg.Identificacion, reg.IDPais, reg.IDRegion,
	)
	return checkAffected(res, err, errs.OpUpdate, "region", reg.IDRegion)
}

func (r *PostgresRegionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM region WHERE id_region = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "region", id)
}
