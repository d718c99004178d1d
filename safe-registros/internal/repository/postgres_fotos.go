package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-registros/internal/domain"
)

// PostgresFotoRepository implements FotoRepository
type PostgresFotoRepository struct {
	db *sql.DB
}

func NewPostgresFotoRepository(db *sql.DB) *PostgresFotoRepository {
	return &PostgresFotoRepository{db: db}
}

var _ FotoRepository = (*PostgresFotoRepository)(nil)

const fotoColumns = `id_foto, url, COALESCE(tipo, ''), tamano, fecha_subida`

func scanFoto(s database.RowScanner) (domain.Foto, error) {
	var f domain.Foto
	err := s.Scan(&f.IDFoto, &f.URL, &f.Tipo, &f.Tamano, &f.FechaSubida)
	return f, err
}

func (r *PostgresFotoRepository) FindAll(ctx context.Context) ([]domain.Foto, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+fotoColumns+` FROM foto ORDER BY id_foto`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fotos: %w", err)
	}
	return database.CollectRows(rows, scanFoto)
}

func (r *PostgresFotoRepository) FindByID(ctx context.Context, id int64) (*domain.Foto, error) {
	f, err := scanFoto(r.db.QueryRowContext(ctx, `SELECT `+fotoColumns+` FROM foto WHERE id_foto = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("foto", id)
		}
		return nil, fmt.Errorf("failed to query foto: %w", err)
	}
	return &f, nil
}

// Create inserts the row; fecha_subida is assigned by the database
func (r *PostgresFotoRepository) Create(ctx context.Context, f *domain.Foto) (*domain.Foto, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO foto (url, tipo, tamano) VALUES ($1, NULLIF($2, ''), $3)
		 RETURNING id_foto, fecha_subida`,
		f.URL, f.Tipo, f.Tamano,
	).Scan(&f.IDFoto, &f.FechaSubida)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "foto")
	}
	return f, nil
}

func (r *PostgresFotoRepository) Update(ctx context.Context, f *domain.Foto) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE foto SET url = $1, tipo = NULLIF($2, ''), tamano = $3 WHERE id_foto = $4`,
		f.URL, f.Tipo, f.Tamano, f.IDFoto,
	)
	return checkAffected(res, err, errs.OpUpdate, "foto", f.IDFoto)
}

func (r *PostgresFotoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM foto WHERE id_foto = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "foto", id)
}
