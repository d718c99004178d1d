package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-registros/internal/domain"
)

// PostgresCategoriaRepository implements CategoriaRepository
type PostgresCategoriaRepository struct {
	db *sql.DB
}

func NewPostgresCategoriaRepository(db *sql.DB) *PostgresCategoriaRepository {
	return &PostgresCategoriaRepository{db: db}
}

var _ CategoriaRepository = (*PostgresCategoriaRepository)(nil)

const categoriaColumns = `id_categoria, nombre, COALESCE(descripcion, '')`

func scanCategoria(s database.RowScanner) (domain.Categoria, error) {
	var c domain.Categoria
	err := s.Scan(&c.IDCategoria, &c.Nombre, &c.Descripcion)
	return c, err
}

func (r *PostgresCategoriaRepository) FindAll(ctx context.Context) ([]domain.Categoria, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+categoriaColumns+` FROM categoria ORDER BY id_categoria`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categorias: %w", err)
	}
	return database.CollectRows(rows, scanCategoria)
}

func (r *PostgresCategoriaRepository) FindByID(ctx context.Context, id int64) (*domain.Categoria, error) {
	e, err := scanCategoria(r.db.QueryRowContext(ctx, `SELECT `+categoriaColumns+` FROM categoria WHERE id_categoria = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("categoria", id)
		}
		return nil, fmt.Errorf("failed to query categoria: %w", err)
	}
	return &e, nil
}

func (r *PostgresCategoriaRepository) Create(ctx context.Context, e *domain.Categoria) (*domain.Categoria, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categoria (nombre, descripcion) VALUES ($1, NULLIF($2, '')) RETURNING id_categoria`,
		e.Nombre, e.Descripcion,
	).Scan(&e.IDCategoria)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "categoria")
	}
	return e, nil
}

func (r *PostgresCategoriaRepository) Update(ctx context.Context, e *domain.Categoria) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categoria SET nombre = $1, descripcion = NULLIF($2, '') WHERE id_categoria = $3`,
		e.Nombre, e.Descripcion, e.IDCategoria,
	)
	return checkAffected(res, err, errs.OpUpdate, "categoria", e.IDCategoria)
}

func (r *PostgresCategoriaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categoria WHERE id_categoria = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "categoria", id)
}
