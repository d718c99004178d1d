package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-comunicacion/internal/domain"
)

// PostgresNotificacionRepository implements NotificacionRepository
type PostgresNotificacionRepository struct {
	db *sql.DB
}

func NewPostgresNotificacionRepository(db *sql.DB) *PostgresNotificacionRepository {
	return &PostgresNotificacionRepository{db: db}
}

var _ NotificacionRepository = (*PostgresNotificacionRepository)(nil)

const notificacionColumns = `id_notificacion, id_usuario_receptor, id_conversacion, detalle, fecha_creacion, leida`

func scanNotificacion(s database.RowScanner) (domain.Notificacion, error) {
	var n domain.Notificacion
	var conversacion sql.NullInt64
	err := s.Scan(&n.IDNotificacion, &n.IDUsuarioReceptor, &conversacion, &n.Detalle, &n.FechaCreacion, &n.Leida)
	n.IDConversacion = database.Int64Ptr(conversacion)
	return n, err
}

func (r *PostgresNotificacionRepository) FindAll(ctx context.Context) ([]domain.Notificacion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+notificacionColumns+` FROM notificacion ORDER BY id_notificacion`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notificaciones: %w", err)
	}
	return database.CollectRows(rows, scanNotificacion)
}

func (r *PostgresNotificacionRepository) FindByID(ctx context.Context, id int64) (*domain.Notificacion, error) {
	n, err := scanNotificacion(r.db.QueryRowContext(ctx,
		`SELECT `+notificacionColumns+` FROM notificacion WHERE id_notificacion = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("notificacion", id)
		}
		return nil, fmt.Errorf("failed to query notificacion: %w", err)
	}
	return &n, nil
}

func (r *PostgresNotificacionRepository) FindByReceptor(ctx context.Context, idUsuario int64) ([]domain.Notificacion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+notificacionColumns+` FROM notificacion
		 WHERE id_usuario_receptor = $1
		 ORDER BY fecha_creacion DESC, id_notificacion DESC`, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("failed to query notificaciones by receptor: %w", err)
	}
	return database.CollectRows(rows, scanNotificacion)
}

func (r *PostgresNotificacionRepository) CountUnread(ctx context.Context, idUsuario int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notificacion WHERE id_usuario_receptor = $1 AND NOT leida`, idUsuario,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notificaciones: %w", err)
	}
	return n, nil
}

func (r *PostgresNotificacionRepository) MarkRead(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notificacion SET leida = true WHERE id_notificacion = $1`, id)
	return checkAffected(res, err, errs.OpUpdate, "notificacion", id)
}

func (r *PostgresNotificacionRepository) MarkAllRead(ctx context.Context, idUsuario int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notificacion SET leida = true WHERE id_usuario_receptor = $1 AND NOT leida`, idUsuario)
	if err != nil {
		return 0, errs.FromDB(err, errs.OpUpdate, "notificacion")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

func (r *PostgresNotificacionRepository) Create(ctx context.Context, n *domain.Notificacion) (*domain.Notificacion, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO notificacion (id_usuario_receptor, id_conversacion, detalle, leida) VALUES ($1, $2, $3, $4)
		 RETURNING id_notificacion, fecha_creacion`,
		n.IDUsuarioReceptor, database.NullInt64(n.IDConversacion), n.Detalle, n.Leida,
	).Scan(&n.IDNotificacion, &n.FechaCreacion)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "notificacion")
	}
	return n, nil
}

func (r *PostgresNotificacionRepository) Update(ctx context.Context, n *domain.Notificacion) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notificacion SET id_conversacion = $1, detalle = $2, leida = $3 WHERE id_notificacion = $4`,
		database.NullInt64(n.IDConversacion), n.Detalle, n.Leida, n.IDNotificacion,
	)
	return checkAffected(res, err, errs.OpUpdate, "notificacion", n.IDNotificacion)
}

func (r *PostgresNotificacionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notificacion WHERE id_notificacion = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "notificacion", id)
}
