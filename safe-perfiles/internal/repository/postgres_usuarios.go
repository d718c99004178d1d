package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-perfiles/internal/domain"
)

// PostgresUsuarioRepository implements UsuarioRepository
type PostgresUsuarioRepository struct {
	db *sql.DB
}

func NewPostgresUsuarioRepository(db *sql.DB) *PostgresUsuarioRepository {
	return &PostgresUsuarioRepository{db: db}
}

var _ UsuarioRepository = (*PostgresUsuarioRepository)(nil)

const usuarioColumns = `id_usuario, run, dv, nombre, a_paterno, COALESCE(a_materno, ''), telefono, correo,
	contrasenia, fecha_registro, intentos_fallidos, id_tipo_usuario, id_estado, id_foto`

func scanUsuario(s database.RowScanner) (domain.Usuario, error) {
	var u domain.Usuario
	var foto sql.NullInt64
	err := s.Scan(
		&u.IDUsuario, &u.Run, &u.Dv, &u.Nombre, &u.APaterno, &u.AMaterno, &u.Telefono, &u.Correo,
		&u.PasswordHash, &u.FechaRegistro, &u.IntentosFallidos, &u.IDTipoUsuario, &u.IDEstado, &foto,
	)
	u.IDFoto = database.Int64Ptr(foto)
	return u, err
}

func (r *PostgresUsuarioRepository) FindAll(ctx context.Context) ([]domain.Usuario, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+usuarioColumns+` FROM usuario ORDER BY id_usuario`)
	if err != nil {
		return nil, fmt.Errorf("failed to query usuarios: %w", err)
	}
	return database.CollectRows(rows, scanUsuario)
}

func (r *PostgresUsuarioRepository) FindByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	u, err := scanUsuario(r.db.QueryRowContext(ctx, `SELECT `+usuarioColumns+` FROM usuario WHERE id_usuario = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("usuario", id)
		}
		return nil, fmt.Errorf("failed to query usuario: %w", err)
	}
	return &u, nil
}

// Create inserts the row; fecha_registro is assigned by the database
func (r *PostgresUsuarioRepository) Create(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO usuario (run, dv, nombre, a_paterno, a_materno, telefono, correo, contrasenia,
		                      intentos_fallidos, id_tipo_usuario, id_estado, id_foto)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id_usuario, fecha_registro`,
		u.Run, u.Dv, u.Nombre, u.APaterno, u.AMaterno, u.Telefono, u.Correo, u.PasswordHash,
		u.IntentosFallidos, u.IDTipoUsuario, u.IDEstado, database.NullInt64(u.IDFoto),
	).Scan(&u.IDUsuario, &u.FechaRegistro)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "usuario")
	}
	return u, nil
}

func (r *PostgresUsuarioRepository) Update(ctx context.Context, u *domain.Usuario) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE usuario
		 SET run = $1, dv = $2, nombre = $3, a_paterno = $4, a_materno = NULLIF($5, ''), telefono = $6,
		     correo = $7, contrasenia = $8, intentos_fallidos = $9, id_tipo_usuario = $10, id_estado = $11,
		     id_foto = $12
		 WHERE id_usuario = $13`,
		u.Run, u.Dv, u.Nombre, u.APaterno, u.AMaterno, u.Telefono, u.Correo, u.PasswordHash,
		u.IntentosFallidos, u.IDTipoUsuario, u.IDEstado, database.NullInt64(u.IDFoto), u.IDUsuario,
	)
	return checkAffected(res, err, errs.OpUpdate, "usuario", u.IDUsuario)
}

func (r *PostgresUsuarioRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM usuario WHERE id_usuario = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "usuario", id)
}
