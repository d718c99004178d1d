package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-comunicacion/internal/domain"
)

// PostgresMensajeRepository implements MensajeRepository
type PostgresMensajeRepository struct {
	db *sql.DB
}

func NewPostgresMensajeRepository(db *sql.DB) *PostgresMensajeRepository {
	return &PostgresMensajeRepository{db: db}
}

var _ MensajeRepository = (*PostgresMensajeRepository)(nil)

const mensajeColumns = `id_mensaje, id_conversacion, id_usuario_emisor, contenido, fecha_creacion, id_estado`

func scanMensaje(s database.RowScanner) (domain.Mensaje, error) {
	var m domain.Mensaje
	err := s.Scan(&m.IDMensaje, &m.IDConversacion, &m.IDUsuarioEmisor, &m.Contenido, &m.FechaCreacion, &m.IDEstado)
	return m, err
}

func (r *PostgresMensajeRepository) FindAll(ctx context.Context) ([]domain.Mensaje, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+mensajeColumns+` FROM mensaje ORDER BY id_mensaje`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mensajes: %w", err)
	}
	return database.CollectRows(rows, scanMensaje)
}

func (r *PostgresMensajeRepository) FindByID(ctx context.Context, id int64) (*domain.Mensaje, error) {
	m, err := scanMensaje(r.db.QueryRowContext(ctx, `SELECT `+mensajeColumns+` FROM mensaje WHERE id_mensaje = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("mensaje", id)
		}
		return nil, fmt.Errorf("failed to query mensaje: %w", err)
	}
	return &m, nil
}

// FindByConversacion messages of one thread in posting order
func (r *PostgresMensajeRepository) FindByConversacion(ctx context.Context, idConversacion int64) ([]domain.Mensaje, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+mensajeColumns+` FROM mensaje WHERE id_conversacion = $1 ORDER BY fecha_creacion, id_mensaje`,
		idConversacion)
	if err != nil {
		return nil, fmt.Errorf("failed to query mensajes by conversacion: %w", err)
	}
	return database.CollectRows(rows, scanMensaje)
}

func (r *PostgresMensajeRepository) Create(ctx context.Context, m *domain.Mensaje) (*domain.Mensaje, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO mensaje (id_conversacion, id_usuario_emisor, contenido, id_estado) VALUES ($1, $2, $3, $4)
		 RETURNING id_mensaje, fecha_creacion`,
		m.IDConversacion, m.IDUsuarioEmisor, m.Contenido, m.IDEstado,
	).Scan(&m.IDMensaje, &m.FechaCreacion)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "mensaje")
	}
	return m, nil
}

func (r *PostgresMensajeRepository) Update(ctx context.Context, m *domain.Mensaje) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE mensaje SET contenido = $1, id_estado = $2 WHERE id_mensaje = $3`,
		m.Contenido, m.IDEstado, m.IDMensaje,
	)
	return checkAffected(res, err, errs.OpUpdate, "mensaje", m.IDMensaje)
}

func (r *PostgresMensajeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mensaje WHERE id_mensaje = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "mensaje", id)
}
