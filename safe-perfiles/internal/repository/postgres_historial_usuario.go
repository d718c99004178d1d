package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-perfiles/internal/domain"
)

// PostgresHistorialUsuarioRepository implements HistorialUsuarioRepository
type PostgresHistorialUsuarioRepository struct {
	db *sql.DB
}

func NewPostgresHistorialUsuarioRepository(db *sql.DB) *PostgresHistorialUsuarioRepository {
	return &PostgresHistorialUsuarioRepository{db: db}
}

var _ HistorialUsuarioRepository = (*PostgresHistorialUsuarioRepository)(nil)

const historialUsuarioColumns = `id_historial, id_usuario, id_equipo, id_compania,
	COALESCE(estado_anterior, ''), estado_nuevo, COALESCE(detalle, ''), fecha_historial`

func scanHistorialUsuario(s database.RowScanner) (domain.HistorialUsuario, error) {
	var h domain.HistorialUsuario
	var usuario, equipo, compania sql.NullInt64
	err := s.Scan(&h.IDHistorial, &usuario, &equipo, &compania,
		&h.EstadoAnterior, &h.EstadoNuevo, &h.Detalle, &h.FechaHistorial)
	h.IDUsuario = database.Int64Ptr(usuario)
	h.IDEquipo = database.Int64Ptr(equipo)
	h.IDCompania = database.Int64Ptr(compania)
	return h, err
}

func (r *PostgresHistorialUsuarioRepository) FindAll(ctx context.Context) ([]domain.HistorialUsuario, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+historialUsuarioColumns+` FROM historial_usuario ORDER BY id_historial`)
	if err != nil {
		return nil, fmt.Errorf("failed to query historial_usuario: %w", err)
	}
	return database.CollectRows(rows, scanHistorialUsuario)
}

func (r *PostgresHistorialUsuarioRepository) FindByID(ctx context.Context, id int64) (*domain.HistorialUsuario, error) {
	h, err := scanHistorialUsuario(r.db.QueryRowContext(ctx,
		`SELECT `+historialUsuarioColumns+` FROM historial_usuario WHERE id_historial = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("historial_usuario", id)
		}
		return nil, fmt.Errorf("failed to query historial_usuario: %w", err)
	}
	return &h, nil
}

// FindByUsuario trail of one user, oldest first
func (r *PostgresHistorialUsuarioRepository) FindByUsuario(ctx context.Context, idUsuario int64) ([]domain.HistorialUsuario, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+historialUsuarioColumns+` FROM historial_usuario
		 WHERE id_usuario = $1 ORDER BY fecha_historial, id_historial`, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("failed to query historial_usuario by usuario: %w", err)
	}
	return database.CollectRows(rows, scanHistorialUsuario)
}

func (r *PostgresHistorialUsuarioRepository) Create(ctx context.Context, h *domain.HistorialUsuario) (*domain.HistorialUsuario, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO historial_usuario (id_usuario, id_equipo, id_compania, estado_anterior, estado_nuevo, detalle)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''))
		 RETURNING id_historial, fecha_historial`,
		database.NullInt64(h.IDUsuario), database.NullInt64(h.IDEquipo), database.NullInt64(h.IDCompania),
		h.EstadoAnterior, h.EstadoNuevo, h.Detalle,
	).Scan(&h.IDHistorial, &h.FechaHistorial)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "historial_usuario")
	}
	return h, nil
}
