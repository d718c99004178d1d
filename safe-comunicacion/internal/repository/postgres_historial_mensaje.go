package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-comunicacion/internal/domain"
)

// PostgresHistorialMensajeRepository implements HistorialMensajeRepository
type PostgresHistorialMensajeRepository struct {
	db *sql.DB
}

func NewPostgresHistorialMensajeRepository(db *sql.DB) *PostgresHistorialMensajeRepository {
	return &PostgresHistorialMensajeRepository{db: db}
}

var _ HistorialMensajeRepository = (*PostgresHistorialMensajeRepository)(nil)

const historialMensajeColumns = `id_historial, id_mensaje, id_estado_anterior, id_estado_nuevo,
	COALESCE(detalle, ''), fecha_historial`

func scanHistorialMensaje(s database.RowScanner) (domain.HistorialMensaje, error) {
	var h domain.HistorialMensaje
	var anterior sql.NullInt64
	err := s.Scan(&h.IDHistorial, &h.IDMensaje, &anterior, &h.IDEstadoNuevo, &h.Detalle, &h.FechaHistorial)
	h.IDEstadoAnterior = database.Int64Ptr(anterior)
	return h, err
}

func (r *PostgresHistorialMensajeRepository) FindAll(ctx context.Context) ([]domain.HistorialMensaje, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+historialMensajeColumns+` FROM historial_mensaje ORDER BY id_historial`)
	if err != nil {
		return nil, fmt.Errorf("failed to query historial_mensaje: %w", err)
	}
	return database.CollectRows(rows, scanHistorialMensaje)
}

func (r *PostgresHistorialMensajeRepository) FindByID(ctx context.Context, id int64) (*domain.HistorialMensaje, error) {
	h, err := scanHistorialMensaje(r.db.QueryRowContext(ctx,
		`SELECT `+historialMensajeColumns+` FROM historial_mensaje WHERE id_historial = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("historial_mensaje", id)
		}
		return nil, fmt.Errorf("failed to query historial_mensaje: %w", err)
	}
	return &h, nil
}

func (r *PostgresHistorialMensajeRepository) FindByMensaje(ctx context.Context, idMensaje int64) ([]domain.HistorialMensaje, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+historialMensajeColumns+` FROM historial_mensaje
		 WHERE id_mensaje = $1 ORDER BY fecha_historial, id_historial`, idMensaje)
	if err != nil {
		return nil, fmt.Errorf("failed to query historial_mensaje by mensaje: %w", err)
	}
	return database.CollectRows(rows, scanHistorialMensaje)
}

func (r *PostgresHistorialMensajeRepository) Create(ctx context.Context, h *domain.HistorialMensaje) (*domain.HistorialMensaje, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO historial_mensaje (id_mensaje, id_estado_anterior, id_estado_nuevo, detalle)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 RETURNING id_historial, fecha_historial`,
		h.IDMensaje, database.NullInt64(h.IDEstadoAnterior), h.IDEstadoNuevo, h.Detalle,
	).Scan(&h.IDHistorial, &h.FechaHistorial)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "historial_mensaje")
	}
	return h, nil
}
