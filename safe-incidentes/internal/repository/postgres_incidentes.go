package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-incidentes/internal/domain"
)

// PostgresIncidenteRepository implements IncidenteRepository
type PostgresIncidenteRepository struct {
	db *sql.DB
}

func NewPostgresIncidenteRepository(db *sql.DB) *PostgresIncidenteRepository {
	return &PostgresIncidenteRepository{db: db}
}

var _ IncidenteRepository = (*PostgresIncidenteRepository)(nil)

const incidenteColumns = `id_incidente, titulo, detalle, fecha_registro, id_tipo_incidente,
	id_ciudadano, id_estado, id_direccion, id_usuario_asignado, id_foto`

func scanIncidente(s database.RowScanner) (domain.Incidente, error) {
	var i domain.Incidente
	var asignado, foto sql.NullInt64
	err := s.Scan(&i.IDIncidente, &i.Titulo, &i.Detalle, &i.FechaRegistro, &i.IDTipoIncidente,
		&i.IDCiudadano, &i.IDEstado, &i.IDDireccion, &asignado, &foto)
	i.IDUsuarioAsignado = database.Int64Ptr(asignado)
	i.IDFoto = database.Int64Ptr(foto)
	return i, err
}

func (r *PostgresIncidenteRepository) FindAll(ctx context.Context) ([]domain.Incidente, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+incidenteColumns+` FROM incidente ORDER BY id_incidente`)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidentes: %w", err)
	}
	return database.CollectRows(rows, scanIncidente)
}

func (r *PostgresIncidenteRepository) FindByID(ctx context.Context, id int64) (*domain.Incidente, error) {
	i, err := scanIncidente(r.db.QueryRowContext(ctx,
		`SELECT `+incidenteColumns+` FROM incidente WHERE id_incidente = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("incidente", id)
		}
		return nil, fmt.Errorf("failed to query incidente: %w", err)
	}
	return &i, nil
}

func (r *PostgresIncidenteRepository) FindByCiudadano(ctx context.Context, idCiudadano int64) ([]domain.Incidente, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+incidenteColumns+` FROM incidente
		 WHERE id_ciudadano = $1
		 ORDER BY fecha_registro DESC, id_incidente DESC`, idCiudadano)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidentes by ciudadano: %w", err)
	}
	return database.CollectRows(rows, scanIncidente)
}

func (r *PostgresIncidenteRepository) Create(ctx context.Context, i *domain.Incidente) (*domain.Incidente, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO incidente (titulo, detalle, id_tipo_incidente, id_ciudadano, id_estado,
			id_direccion, id_usuario_asignado, id_foto)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id_incidente, fecha_registro`,
		i.Titulo, i.Detalle, i.IDTipoIncidente, i.IDCiudadano, i.IDEstado,
		i.IDDireccion, database.NullInt64(i.IDUsuarioAsignado), database.NullInt64(i.IDFoto),
	).Scan(&i.IDIncidente, &i.FechaRegistro)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "incidente")
	}
	return i, nil
}

// Update keeps fecha_registro untouched
func (r *PostgresIncidenteRepository) Update(ctx context.Context, i *domain.Incidente) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE incidente SET titulo = $1, detalle = $2, id_tipo_incidente = $3, id_ciudadano = $4,
			id_estado = $5, id_direccion = $6, id_usuario_asignado = $7, id_foto = $8
		 WHERE id_incidente = $9`,
		i.Titulo, i.Detalle, i.IDTipoIncidente, i.IDCiudadano, i.IDEstado, i.IDDireccion,
		database.NullInt64(i.IDUsuarioAsignado), database.NullInt64(i.IDFoto), i.IDIncidente,
	)
	return checkAffected(res, err, errs.OpUpdate, "incidente", i.IDIncidente)
}

func (r *PostgresIncidenteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incidente WHERE id_incidente = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "incidente", id)
}
