package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-geolocalizacion/internal/domain"
)

// PostgresDireccionRepository implements DireccionRepository
type PostgresDireccionRepository struct {
	db *sql.DB
}

func NewPostgresDireccionRepository(db *sql.DB) *PostgresDireccionRepository {
	return &PostgresDireccionRepository{db: db}
}

var _ DireccionRepository = (*PostgresDireccionRepository)(nil)

const direccionColumns = `d.id_direccion, d.calle, d.numero, COALESCE(d.villa, ''), COALESCE(d.complemento, ''), d.id_comuna, d.id_geolocalizacion`

func scanDireccion(s database.RowScanner) (domain.Direccion, error) {
	var d domain.Direccion
	var geo sql.NullInt64
	err := s.Scan(&d.IDDireccion, &d.Calle, &d.Numero, &d.Villa, &d.Complemento, &d.IDComuna, &geo)
	d.IDGeolocalizacion = database.Int64Ptr(geo)
	return d, err
}

func (r *PostgresDireccionRepository) FindAll(ctx context.Context) ([]domain.Direccion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+direccionColumns+` FROM direccion d ORDER BY d.id_direccion`)
	if err != nil {
		return nil, fmt.Errorf("failed to query direcciones: %w", err)
	}
	return database.CollectRows(rows, scanDireccion)
}

func (r *PostgresDireccionRepository) FindByID(ctx context.Context, id int64) (*domain.Direccion, error) {
	d, err := scanDireccion(r.db.QueryRowContext(ctx,
		`SELECT `+direccionColumns+` FROM direccion d WHERE d.id_direccion = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("direccion", id)
		}
		return nil, fmt.Errorf("failed to query direccion: %w", err)
	}
	return &d, nil
}

// FindDetalle resolves the comuna → region → pais chain and the coordinates in one query
func (r *PostgresDireccionRepository) FindDetalle(ctx context.Context, id int64) (*domain.DireccionDetalle, error) {
	query := `
		SELECT ` + direccionColumns + `,
			c.nombre, r.nombre, p.nombre,
			g.latitud, g.longitud
		FROM direccion d
		JOIN comuna c ON c.id_comuna = d.id_comuna
		JOIN region r ON r.id_region = c.id_region
		JOIN pais p ON p.id_pais = r.id_pais
		LEFT JOIN geolocalizacion g ON g.id_geolocalizacion = d.id_geolocalizacion
		WHERE d.id_direccion = $1
	`
	var det domain.DireccionDetalle
	var geo sql.NullInt64
	var lat, lng sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&det.IDDireccion, &det.Calle, &det.Numero, &det.Villa, &det.Complemento, &det.IDComuna, &geo,
		&det.Comuna, &det.Region, &det.Pais,
		&lat, &lng,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("direccion", id)
		}
		return nil, fmt.Errorf("failed to query direccion detalle: %w", err)
	}
	det.IDGeolocalizacion = database.Int64Ptr(geo)
	if geo.Valid && lat.Valid && lng.Valid {
		det.Coordenadas = &domain.Coordenadas{IDGeolocalizacion: geo.Int64, Latitud: lat.Float64, Longitud: lng.Float64}
	}
	return &det, nil
}

func (r *PostgresDireccionRepository) Create(ctx context.Context, d *domain.Direccion) (*domain.Direccion, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO direccion (calle, numero, villa, complemento, id_comuna, id_geolocalizacion)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		 RETURNING id_direccion`,
		d.Calle, d.Numero, d.Villa, d.Complemento, d.IDComuna, database.NullInt64(d.IDGeolocalizacion),
	).Scan(&d.IDDireccion)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "direccion")
	}
	return d, nil
}

func (r *PostgresDireccionRepository) Update(ctx context.Context, d *domain.Direccion) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE direccion
		 SET calle = $1, numero = $2, villa = NULLIF($3, ''), complemento = NULLIF($4, ''),
		     id_comuna = $5, id_geolocalizacion = $6
		 WHERE id_direccion = $7`,
		d.Calle, d.Numero, d.Villa, d.Complemento, d.IDComuna, database.NullInt64(d.IDGeolocalizacion), d.IDDireccion,
	)
	return checkAffected(res, err, errs.OpUpdate, "direccion", d.IDDireccion)
}

func (r *PostgresDireccionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM direccion WHERE id_direccion = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "direccion", id)
}
