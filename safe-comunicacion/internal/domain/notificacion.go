package domain

import (
	"strings"
	"time"
)

// Notificacion message addressed to one usuario (table notificacion)
type Notificacion struct {
	IDNotificacion    int64     `json:"id_notificacion" db:"id_notificacion"`
	IDUsuarioReceptor int64     `json:"id_usuario_receptor" db:"id_usuario_receptor" validate:"required"`
	IDConversacion    *int64    `json:"id_conversacion,omitempty" db:"id_conversacion"`
	Detalle           string    `json:"detalle" db:"detalle" validate:"required,max=255"`
	FechaCreacion     time.Time `json:"fecha_creacion" db:"fecha_creacion"`
	Leida             bool      `json:"leida" db:"leida"`
}

type NotificacionPatch struct {
	IDConversacion *int64  `json:"id_conversacion"`
	Detalle        *string `json:"detalle"`
	Leida          *bool   `json:"leida"`
}

func (n *Notificacion) Normalize() {
	n.Detalle = strings.TrimSpace(n.Detalle)
}

func (p NotificacionPatch) Apply(e *Notificacion) {
	if p.IDConversacion != nil {
		e.IDConversacion = p.IDConversacion
	}
	if p.Detalle != nil {
		e.Detalle = *p.Detalle
	}
	if p.Leida != nil {
		e.Leida = *p.Leida
	}
}

// NoLeidas unread counter of one receptor
type NoLeidas struct {
	IDUsuario int64 `json:"id_usuario"`
	Total     int64 `json:"total"`
}

// Marcadas result of a bulk mark-as-read
type Marcadas struct {
	IDUsuario    int64 `json:"id_usuario"`
	Actualizadas int64 `json:"actualizadas"`
}
