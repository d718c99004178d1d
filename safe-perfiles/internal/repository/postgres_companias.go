package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-perfiles/internal/domain"
)

// PostgresCompaniaRepository implements CompaniaRepository
type PostgresCompaniaRepository struct {
	db *sql.DB
}

func NewPostgresCompaniaRepository(db *sql.DB) *PostgresCompaniaRepository {
	return &PostgresCompaniaRepository{db: db}
}

var _ CompaniaRepository = (*PostgresCompaniaRepository)(nil)

const companiaColumns = `id_compania, nombre, fecha_fundacion, id_direccion`

func scanCompania(s database.RowScanner) (domain.Compania, error) {
	var c domain.Compania
	var fundacion sql.NullTime
	err := s.Scan(&c.IDCompania, &c.Nombre, &fundacion, &c.IDDireccion)
	if fundacion.Valid {
		c.FechaFundacion = &fundacion.Time
	}
	return c, err
}

func (r *PostgresCompaniaRepository) FindAll(ctx context.Context) ([]domain.Compania, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+companiaColumns+` FROM compania ORDER BY id_compania`)
	if err != nil {
		return nil, fmt.Errorf("failed to query companias: %w", err)
	}
	return database.CollectRows(rows, scanCompania)
}

func (r *PostgresCompaniaRepository) FindByID(ctx context.Context, id int64) (*domain.Compania, error) {
	c, err := scanCompania(r.db.QueryRowContext(ctx, `SELECT `+companiaColumns+` FROM compania WHERE id_compania = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("compania", id)
		}
		return nil, fmt.Errorf("failed to query compania: %w", err)
	}
	return &c, nil
}

func (r *PostgresCompaniaRepository) Create(ctx context.Context, c *domain.Compania) (*domain.Compania, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO compania (nombre, fecha_fundacion, id_direccion) VALUES ($1, $2, $3) RETURNING id_compania`,
		c.Nombre, nullTime(c.FechaFundacion), c.IDDireccion,
	).Scan(&c.IDCompania)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "compania")
	}
	return c, nil
}

func (r *PostgresCompaniaRepository) Update(ctx context.Context, c *domain.Compania) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE compania SET nombre = $1, fecha_fundacion = $2, id_direccion = $3 WHERE id_compania = $4`,
		c.Nombre, nullTime(c.FechaFundacion), c.IDDireccion, c.IDCompania,
	)
	return checkAffected(res, err, errs.OpUpdate, "compania", c.IDCompania)
}

func (r *PostgresCompaniaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM compania WHERE id_compania = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "compania", id)
}
