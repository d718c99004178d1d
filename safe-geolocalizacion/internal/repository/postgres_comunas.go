package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-geolocalizacion/internal/domain"
)

// PostgresComunaRepository implements ComunaRepository
type PostgresComunaRepository struct {
	db *sql.DB
}

func NewPostgresComunaRepository(db *sql.DB) *PostgresComunaRepository {
	return &PostgresComunaRepository{db: db}
}

var _ ComunaRepository = (*PostgresComunaRepository)(nil)

const comunaColumns = `id_comuna, nombre, COALESCE(codigo_postal, ''), id_region`

func scanComuna(s database.RowScanner) (domain.Comuna, error) {
	var c domain.Comuna
	err := s.Scan(&c.IDComuna, &c.Nombre, &c.CodigoPostal, &c.IDRegion)
	return c, err
}

func (r *PostgresComunaRepository) FindAll(ctx context.Context) ([]domain.Comuna, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+comunaColumns+` FROM comuna ORDER BY id_comuna`)
	if err != nil {
		return nil, fmt.Errorf("failed to query comunas: %w", err)
	}
	return database.CollectRows(rows, scanComuna)
}

func (r *PostgresComunaRepository) FindByRegion(ctx context.Context, idRegion int64) ([]domain.Comuna, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+comunaColumns+` FROM comuna WHERE id_region = $1 ORDER BY nombre`, idRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to query comunas by region: %w", err)
	}
	return database.CollectRows(rows, scanComuna)
}

func (r *PostgresComunaRepository) FindByID(ctx context.Context, id int64) (*domain.Comuna, error) {
	c, err := scanComuna(r.db.QueryRowContext(ctx, `SELECT `+comunaColumns+` FROM comuna WHERE id_comuna = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("comuna", id)
		}
		return nil, fmt.Errorf("failed to query comuna: %w", err)
	}
	return &c, nil
}

func (r *PostgresComunaRepository) Create(ctx context.Context, c *domain.Comuna) (*domain.Comuna, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO comuna (nombre, codigo_postal, id_region) VALUES ($1, NULLIF($2, ''), $3) RETURNING id_comuna`,
		c.Nombre, c.CodigoPostal, c.IDRegion,
	).Scan(&c.IDComuna)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "comuna")
	}
	return c, nil
}

func (r *PostgresComunaRepository) Update(ctx context.Context, c *domain.Comuna) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE comuna SET nombre = $1, codigo_postal = NULLIF($2, ''), id_region = $3 WHERE id_comuna = $4`,
		c.Nombre, c.CodigoPostal, c.IDRegion, c.IDComuna,
	)
	return checkAffected(res, err, errs.OpUpdate, "comuna", c.IDComuna)
}

func (r *PostgresComunaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comuna WHERE id_comuna = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "comuna", id)
}
