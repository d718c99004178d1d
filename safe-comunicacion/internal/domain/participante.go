package domain

import "time"

// ParticipanteConversacion membership of a usuario in a conversacion; the pair is unique
type ParticipanteConversacion struct {
	IDParticipanteConversacion int64     `json:"id_participante_conversacion" db:"id_participante_conversacion"`
	IDConversacion             int64     `json:"id_conversacion" db:"id_conversacion" validate:"required"`
	IDUsuario                  int64     `json:"id_usuario" db:"id_usuario" validate:"required"`
	FechaUnion                 time.Time `json:"fecha_union" db:"fecha_union"`
}

type ParticipanteConversacionPatch struct {
	IDConversacion *int64 `json:"id_conversacion"`
	IDUsuario      *int64 `json:"id_usuario"`
}

func (p ParticipanteConversacionPatch) Apply(e *ParticipanteConversacion) {
	if p.IDConversacion != nil {
		e.IDConversacion = *p.IDConversacion
	}
	if p.IDUsuario != nil {
		e.IDUsuario = *p.IDUsuario
	}
}
