package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-comunicacion/internal/domain"
)

// PostgresConversacionRepository implements ConversacionRepository
type PostgresConversacionRepository struct {
	db *sql.DB
}

func NewPostgresConversacionRepository(db *sql.DB) *PostgresConversacionRepository {
	return &PostgresConversacionRepository{db: db}
}

var _ ConversacionRepository = (*PostgresConversacionRepository)(nil)

const conversacionColumns = `id_conversacion, tipo, COALESCE(nombre, ''), fecha_creacion, id_incidente`

func scanConversacion(s database.RowScanner) (domain.Conversacion, error) {
	var c domain.Conversacion
	var incidente sql.NullInt64
	err := s.Scan(&c.IDConversacion, &c.Tipo, &c.Nombre, &c.FechaCreacion, &incidente)
	c.IDIncidente = database.Int64Ptr(incidente)
	return c, err
}

func (r *PostgresConversacionRepository) FindAll(ctx context.Context) ([]domain.Conversacion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+conversacionColumns+` FROM conversacion ORDER BY id_conversacion`)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversaciones: %w", err)
	}
	return database.CollectRows(rows, scanConversacion)
}

func (r *PostgresConversacionRepository) FindByID(ctx context.Context, id int64) (*domain.Conversacion, error) {
	c, err := scanConversacion(r.db.QueryRowContext(ctx,
		`SELECT `+conversacionColumns+` FROM conversacion WHERE id_conversacion = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("conversacion", id)
		}
		return nil, fmt.Errorf("failed to query conversacion: %w", err)
	}
	return &c, nil
}

func (r *PostgresConversacionRepository) Create(ctx context.Context, c *domain.Conversacion) (*domain.Conversacion, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO conversacion (tipo, nombre, id_incidente) VALUES ($1, NULLIF($2, ''), $3)
		 RETURNING id_conversacion, fecha_creacion`,
		c.Tipo, c.Nombre, database.NullInt64(c.IDIncidente),
	).Scan(&c.IDConversacion, &c.FechaCreacion)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "conversacion")
	}
	return c, nil
}

func (r *PostgresConversacionRepository) Update(ctx context.Context, c *domain.Conversacion) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE conversacion SET tipo = $1, nombre = NULLIF($2, ''), id_incidente = $3 WHERE id_conversacion = $4`,
		c.Tipo, c.Nombre, database.NullInt64(c.IDIncidente), c.IDConversacion,
	)
	return checkAffected(res, err, errs.OpUpdate, "conversacion", c.IDConversacion)
}

func (r *PostgresConversacionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM conversacion WHERE id_conversacion = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "conversacion", id)
}
