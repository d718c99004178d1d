package repository

import (
	"context"
	"database/sql"
	"fmt"

	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-comunicacion/internal/domain"
)

// PostgresParticipanteRepository implements ParticipanteRepository
type PostgresParticipanteRepository struct {
	db *sql.DB
}

func NewPostgresParticipanteRepository(db *sql.DB) *PostgresParticipanteRepository {
	return &PostgresParticipanteRepository{db: db}
}

var _ ParticipanteRepository = (*PostgresParticipanteRepository)(nil)

const participanteColumns = `id_participante_conversacion, id_conversacion, id_usuario, fecha_union`

func scanParticipante(s database.RowScanner) (domain.ParticipanteConversacion, error) {
	var p domain.ParticipanteConversacion
	err := s.Scan(&p.IDParticipanteConversacion, &p.IDConversacion, &p.IDUsuario, &p.FechaUnion)
	return p, err
}

func (r *PostgresParticipanteRepository) FindAll(ctx context.Context) ([]domain.ParticipanteConversacion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+participanteColumns+` FROM participante_conversacion ORDER BY id_participante_conversacion`)
	if err != nil {
		return nil, fmt.Errorf("failed to query participantes: %w", err)
	}
	return database.CollectRows(rows, scanParticipante)
}

func (r *PostgresParticipanteRepository) FindByID(ctx context.Context, id int64) (*domain.ParticipanteConversacion, error) {
	p, err := scanParticipante(r.db.QueryRowContext(ctx,
		`SELECT `+participanteColumns+` FROM participante_conversacion WHERE id_participante_conversacion = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.NotFound("participante_conversacion", id)
		}
		return nil, fmt.Errorf("failed to query participante: %w", err)
	}
	return &p, nil
}

func (r *PostgresParticipanteRepository) FindByConversacion(ctx context.Context, idConversacion int64) ([]domain.ParticipanteConversacion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+participanteColumns+` FROM participante_conversacion
		 WHERE id_conversacion = $1 ORDER BY fecha_union, id_participante_conversacion`, idConversacion)
	if err != nil {
		return nil, fmt.Errorf("failed to query participantes by conversacion: %w", err)
	}
	return database.CollectRows(rows, scanParticipante)
}

func (r *PostgresParticipanteRepository) Exists(ctx context.Context, idConversacion, idUsuario int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM participante_conversacion WHERE id_conversacion = $1 AND id_usuario = $2)`,
		idConversacion, idUsuario,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("failed to check participante: %w", err)
	}
	return ok, nil
}

func (r *PostgresParticipanteRepository) Create(ctx context.Context, p *domain.ParticipanteConversacion) (*domain.ParticipanteConversacion, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO participante_conversacion (id_conversacion, id_usuario) VALUES ($1, $2)
		 RETURNING id_participante_conversacion, fecha_union`,
		p.IDConversacion, p.IDUsuario,
	).Scan(&p.IDParticipanteConversacion, &p.FechaUnion)
	if err != nil {
		return nil, errs.FromDB(err, errs.OpInsert, "participante_conversacion")
	}
	return p, nil
}

func (r *PostgresParticipanteRepository) Update(ctx context.Context, p *domain.ParticipanteConversacion) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE participante_conversacion SET id_conversacion = $1, id_usuario = $2 WHERE id_participante_conversacion = $3`,
		p.IDConversacion, p.IDUsuario, p.IDParticipanteConversacion,
	)
	return checkAffected(res, err, errs.OpUpdate, "participante_conversacion", p.IDParticipanteConversacion)
}

func (r *PostgresParticipanteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM participante_conversacion WHERE id_participante_conversacion = $1`, id)
	return checkAffected(res, err, errs.OpDelete, "participante_conversacion", id)
}
