package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-perfiles/internal/domain"
)

// PostgresBomberoRepository implements BomberoRepository
type PostgresBomberoRepository struct {
	db *sql.DB
}

func NewPostgresBomberoRepository(db *sql.DB) *PostgresBomberoRepository {
	return &PostgresBomberoRepository{db: db}
}

var _ BomberoRepository = (*PostgresBomberoRepository)(nil)

func scanBombero(s database.RowScanner) (domain.Bombero, error) {
	var b domain.Bombero
	err := s.Scan(&b.IDUsuario, &b.IDEquipo)
	return b, err
}

func (r *PostgresBomberoRepository) FindAll(ctx context.Context) ([]domain.Bombero, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_usuario, id_equipo FROM bombero ORDER BY id_usuario`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bomberos: %w", err)
	}
	return database.CollectRows(rows, scanBombero)
}

func (r *PostgresBomberoRepository) FindByEquipo(ctx context.Context, idEquipo int64) ([]domain.Bombero, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id_usuario, id_equipo FROM bombero WHERE id_equipo = $1 ORDER BY id_usuario`, idEquipo)
	if err != nil {
		return nil, fmt.Errorf("failed to query bomberos by equipo: %w", err)
	}
	return database.CollectRows(rows, scanBombero)
}

func (r *PostgresBomberoRepository) FindByID(ctx context.Context, idUsuario int64) (*domain.Bombero, error) {
	b, err := scanBombero(r.db.QueryRowContext(ctx,
		`SELECT id_usuario, id_equipo FROM bombero WHERE id_usuario = $1`, idUsuario))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("bombero", idUsuario)
		}
		return nil, fmt.Errorf("failed to query bombero: %w", err)
	}
	return &b, nil
}

func (r *PostgresBomberoRepository) Create(ctx context.Context, b *domain.Bombero) (*domain.Bombero, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bombero (id_usuario, id_equipo) VALUES ($1, $2)`, b.IDUsuario, b.IDEquipo)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "bombero")
	}
	return b, nil
}

func (r *PostgresBomberoRepository) Update(ctx context.Context, b *domain.Bombero) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bombero SET id_equipo = $1 WHERE id_usuario = $2`, b.IDEquipo, b.IDUsuario)
	return checkAffected(res, err, errs.OpUpdate, "bombero", b.IDUsuario)
}

func (r *PostgresBomberoRepository) Delete(ctx context.Context, idUsuario int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bombero WHERE id_usuario = $1`, idUsuario)
	return checkAffected(res, err, errs.OpDelete, "bombero", idUsuario)
}
