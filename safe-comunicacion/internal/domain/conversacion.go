package domain

import (
	"strings"
	"time"
)

// Conversacion chat thread, optionally tied to an incidente (table conversacion)
type Conversacion struct {
	IDConversacion int64     `json:"id_conversacion" db:"id_conversacion"`
	Tipo           string    `json:"tipo" db:"tipo" validate:"required,max=50"`
	Nombre         string    `json:"nombre,omitempty" db:"nombre" validate:"max=50"`
	FechaCreacion  time.Time `json:"fecha_creacion" db:"fecha_creacion"`
	IDIncidente    *int64    `json:"id_incidente,omitempty" db:"id_incidente"`
}

type ConversacionPatch struct {
	Tipo        *string `json:"tipo"`
	Nombre      *string `json:"nombre"`
	IDIncidente *int64  `json:"id_incidente"`
}

func (c *Conversacion) Normalize() {
	c.Tipo = strings.TrimSpace(c.Tipo)
	c.Nombre = strings.TrimSpace(c.Nombre)
}

func (p ConversacionPatch) Apply(e *Conversacion) {
	if p.Tipo != nil {
		e.Tipo = *p.Tipo
	}
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
	if p.IDIncidente != nil {
		e.IDIncidente = p.IDIncidente
	}
}
