package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-geolocalizacion/internal/domain"
)

// PostgresCoordenadasRepository implements CoordenadasRepository (table geolocalizacion)
type PostgresCoordenadasRepository struct {
	db *sql.DB
}

func NewPostgresCoordenadasRepository(db *sql.DB) *PostgresCoordenadasRepository {
	return &PostgresCoordenadasRepository{db: db}
}

var _ CoordenadasRepository = (*PostgresCoordenadasRepository)(nil)

func scanCoordenadas(s database.RowScanner) (domain.Coordenadas, error) {
	var c domain.Coordenadas
	err := s.Scan(&c.IDGeolocalizacion, &c.Latitud, &c.Longitud)
	return c, err
}

func (r *PostgresCoordenadasRepository) FindAll(ctx context.Context) ([]domain.Coordenadas, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id_geolocalizacion, latitud, longitud FROM geolocalizacion ORDER BY id_geolocalizacion`)
	if err != nil {
		return nil, fmt.Errorf("failed to query coordenadas: %w", err)
	}
	return database.CollectRows(rows, scanCoordenadas)
}

func (r *PostgresCoordenadasRepository) FindByID(ctx context.Context, id int64) (*domain.Coordenadas, error) {
	c, err := scanCoordenadas(r.db.QueryRowContext(ctx,
		`SELECT id_geolocalizacion, latitud, longitud FROM geolocalizacion WHERE id_geolocalizacion = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("coordenadas", id)
		}
		return nil, fmt.Errorf("failed to query coordenadas: %w", err)
	}
	return &c, nil
}

func (r *PostgresCoordenadasRepository) Create(ctx context.Context, c *domain.Coordenadas) (*domain.Coordenadas, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO geolocalizacion (latitud, longitud) VALUES ($1, $2) RETURNING id_geolocalizacion`,
		c.Latitud, c.Longitud,
	).Scan(&c.IDGeolocalizacion)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "coordenadas")
	}
	return c, nil
}

func (r *PostgresCoordenadasRepository) Update(ctx context.Context, c *domain.Coordenadas) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE geolocalizacion SET latitud = $1, longitud = $2 WHERE id_geolocalizacion = $3`,
		c.Latitud, c.Longitud, c.IDGeolocalizacion,
	)
	return checkAffected(res, err, errs.OpUpdate, "coordenadas", c.IDGeolocalizacion)
}

func (r *PostgresCoordenadasRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM geolocalizacion WHERE id_geolocalizacion = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "coordenadas", id)
}
