package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-registros/internal/domain"
)

// PostgresHistorialRepository implements HistorialRepository
type PostgresHistorialRepository struct {
	db *sql.DB
}

func NewPostgresHistorialRepository(db *sql.DB) *PostgresHistorialRepository {
	return &PostgresHistorialRepository{db: db}
}

var _ HistorialRepository = (*PostgresHistorialRepository)(nil)

const historialColumns = `id_historial, entidad, id_entidad, id_estado_anterior, id_estado_nuevo,
	COALESCE(detalle, ''), fecha_historial`

func scanHistorial(s database.RowScanner) (domain.Historial, error) {
	var h domain.Historial
	var anterior sql.NullInt64
	err := s.Scan(&h.IDHistorial, &h.Entidad, &h.IDEntidad, &anterior, &h.IDEstadoNuevo, &h.Detalle, &h.FechaHistorial)
	h.IDEstadoAnterior = database.Int64Ptr(anterior)
	return h, err
}

func (r *PostgresHistorialRepository) FindAll(ctx context.Context) ([]domain.Historial, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+historialColumns+` FROM historial ORDER BY id_historial`)
	if err != nil {
		return nil, fmt.Errorf("failed to query historial: %w", err)
	}
	return database.CollectRows(rows, scanHistorial)
}

func (r *PostgresHistorialRepository) FindByID(ctx context.Context, id int64) (*domain.Historial, error) {
	h, err := scanHistorial(r.db.QueryRowContext(ctx,
		`SELECT `+historialColumns+` FROM historial WHERE id_historial = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("historial", id)
		}
		return nil, fmt.Errorf("failed to query historial: %w", err)
	}
	return &h, nil
}

// FindByEntidad returns the trail of one row, oldest first
func (r *PostgresHistorialRepository) FindByEntidad(ctx context.Context, entidad string, idEntidad int64) ([]domain.Historial, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+historialColumns+` FROM historial
		 WHERE entidad = $1 AND id_entidad = $2
		 ORDER BY fecha_historial, id_historial`,
		entidad, idEntidad,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query historial by entidad: %w", err)
	}
	return database.CollectRows(rows, scanHistorial)
}

func (r *PostgresHistorialRepository) Create(ctx context.Context, h *domain.Historial) (*domain.Historial, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO historial (entidad, id_entidad, id_estado_anterior, id_estado_nuevo, detalle)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		 RETURNING id_historial, fecha_historial`,
		h.Entidad, h.IDEntidad, database.NullInt64(h.IDEstadoAnterior), h.IDEstadoNuevo, h.Detalle,
	).Scan(&h.IDHistorial, &h.FechaHistorial)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "historial")
	}
	return h, nil
}
