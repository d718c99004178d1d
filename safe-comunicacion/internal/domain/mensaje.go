package domain

import (
	"strings"
	"time"
)

// Mensaje message posted to a conversacion. IDUsuarioEmisor lives in Perfiles and
// IDEstado in Registros.
type Mensaje struct {
	IDMensaje       int64     `json:"id_mensaje" db:"id_mensaje"`
	IDConversacion  int64     `json:"id_conversacion" db:"id_conversacion" validate:"required"`
	IDUsuarioEmisor int64     `json:"id_usuario_emisor" db:"id_usuario_emisor" validate:"required"`
	Contenido       string    `json:"contenido" db:"contenido" validate:"required,max=255"`
	FechaCreacion   time.Time `json:"fecha_creacion" db:"fecha_creacion"`
	IDEstado        int64     `json:"id_estado" db:"id_estado" validate:"required"`
}

// MensajePatch sender and conversacion of a message are fixed once posted
type MensajePatch struct {
	Contenido *string `json:"contenido"`
	IDEstado  *int64  `json:"id_estado"`
}

func (m *Mensaje) Normalize() {
	m.Contenido = strings.TrimSpace(m.Contenido)
}

func (p MensajePatch) Apply(e *Mensaje) {
	if p.Contenido != nil {
		e.Contenido = *p.Contenido
	}
	if p.IDEstado != nil {
		e.IDEstado = *p.IDEstado
	}
}
