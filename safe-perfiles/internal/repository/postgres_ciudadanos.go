package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-perfiles/internal/domain"
)

// PostgresCiudadanoRepository implements CiudadanoRepository
type PostgresCiudadanoRepository struct {
	db *sql.DB
}

func NewPostgresCiudadanoRepository(db *sql.DB) *PostgresCiudadanoRepository {
	return &PostgresCiudadanoRepository{db: db}
}

var _ CiudadanoRepository = (*PostgresCiudadanoRepository)(nil)

func scanCiudadano(s database.RowScanner) (domain.Ciudadano, error) {
	var c domain.Ciudadano
	err := s.Scan(&c.IDUsuario, &c.IDDireccion)
	return c, err
}

func (r *PostgresCiudadanoRepository) FindAll(ctx context.Context) ([]domain.Ciudadano, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_usuario, id_direccion FROM ciudadano ORDER BY id_usuario`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ciudadanos: %w", err)
	}
	return database.CollectRows(rows, scanCiudadano)
}

func (r *PostgresCiudadanoRepository) FindByID(ctx context.Context, idUsuario int64) (*domain.Ciudadano, error) {
	c, err := scanCiudadano(r.db.QueryRowContext(ctx,
		`SELECT id_usuario, id_direccion FROM ciudadano WHERE id_usuario = $1`, idUsuario))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("ciudadano", idUsuario)
		}
		return nil, fmt.Errorf("failed to query ciudadano: %w", err)
	}
	return &c, nil
}

func (r *PostgresCiudadanoRepository) Create(ctx context.Context, c *domain.Ciudadano) (*domain.Ciudadano, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ciudadano (id_usuario, id_direccion) VALUES ($1, $2)`, c.IDUsuario, c.IDDireccion)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "ciudadano")
	}
	return c, nil
}

func (r *PostgresCiudadanoRepository) Update(ctx context.Context, c *domain.Ciudadano) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE ciudadano SET id_direccion = $1 WHERE id_usuario = $2`, c.IDDireccion, c.IDUsuario)
	return checkAffected(res, err, errs.OpUpdate, "ciudadano", c.IDUsuario)
}

func (r *PostgresCiudadanoRepository) Delete(ctx context.Context, idUsuario int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ciudadano WHERE id_usuario = $1`, idUsuario)
	return checkAffected(res, err, errs.OpDelete, "ciudadano", idUsuario)
}
