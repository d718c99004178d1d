package domain

import "strings"

// Estado lifecycle status shared by every service (table estado)
type Estado struct {
	IDEstado    int64  `json:"id_estado" db:"id_estado"`
	Nombre      string `json:"nombre" db:"nombre" validate:"required,max=50"`
	Descripcion string `json:"descripcion,omitempty" db:"descripcion" validate:"max=100"`
}

type EstadoPatch struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

func (e *Estado) Normalize() {
	e.Nombre = strings.TrimSpace(e.Nombre)
	e.Descripcion = strings.TrimSpace(e.Descripcion)
}

func (p EstadoPatch) Apply(e *Estado) {
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
	if p.Descripcion != nil {
		e.Descripcion = *p.Descripcion
	}
}
