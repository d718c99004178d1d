package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-perfiles/internal/domain"
)

// PostgresTipoUsuarioRepository implements TipoUsuarioRepository
type PostgresTipoUsuarioRepository struct {
	db *sql.DB
}

func NewPostgresTipoUsuarioRepository(db *sql.DB) *PostgresTipoUsuarioRepository {
	return &PostgresTipoUsuarioRepository{db: db}
}

var _ TipoUsuarioRepository = (*PostgresTipoUsuarioRepository)(nil)

func scanTipoUsuario(s database.RowScanner) (domain.TipoUsuario, error) {
	var t domain.TipoUsuario
	err := s.Scan(&t.IDTipoUsuario, &t.Nombre)
	return t, err
}

func (r *PostgresTipoUsuarioRepository) FindAll(ctx context.Context) ([]domain.TipoUsuario, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_tipo_usuario, nombre FROM tipo_usuario ORDER BY id_tipo_usuario`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tipos de usuario: %w", err)
	}
	return database.CollectRows(rows, scanTipoUsuario)
}

func (r *PostgresTipoUsuarioRepository) FindByID(ctx context.Context, id int64) (*domain.TipoUsuario, error) {
	t, err := scanTipoUsuario(r.db.QueryRowContext(ctx,
		`SELECT id_tipo_usuario, nombre FROM tipo_usuario WHERE id_tipo_usuario = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("tipo_usuario", id)
		}
		return nil, fmt.Errorf("failed to query tipo_usuario: %w", err)
	}
	return &t, nil
}

func (r *PostgresTipoUsuarioRepository) Create(ctx context.Context, t *domain.TipoUsuario) (*domain.TipoUsuario, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tipo_usuario (nombre) VALUES ($1) RETURNING id_tipo_usuario`, t.Nombre,
	).Scan(&t.IDTipoUsuario)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "tipo_usuario")
	}
	return t, nil
}

func (r *PostgresTipoUsuarioRepository) Update(ctx context.Context, t *domain.TipoUsuario) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tipo_usuario SET nombre = $1 WHERE id_tipo_usuario = $2`, t.Nombre, t.IDTipoUsuario)
	return checkAffected(res, err, errs.OpUpdate, "tipo_usuario", t.IDTipoUsuario)
}

func (r *PostgresTipoUsuarioRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tipo_usuario WHERE id_tipo_usuario = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "tipo_usuario", id)
}
