package domain

import "strings"

// Equipo team inside a compania (table equipo). IDEstado lives in Registros.
type Equipo struct {
	IDEquipo   int64  `json:"id_equipo" db:"id_equipo"`
	Nombre     string `json:"nombre" db:"nombre" validate:"required,max=50"`
	IDCompania int64  `json:"id_compania" db:"id_compania" validate:"required"`
	IDLider    *int64 `json:"id_lider,omitempty" db:"id_lider"`
	IDEstado   int64  `json:"id_estado" db:"id_estado" validate:"required"`
}

type EquipoPatch struct {
	Nombre     *string `json:"nombre"`
	IDCompania *int64  `json:"id_compania"`
	IDLider    *int64  `json:"id_lider"`
	IDEstado   *int64  `json:"id_estado"`
}

func (e *Equipo) Normalize() {
	e.Nombre = strings.TrimSpace(e.Nombre)
}

func (p EquipoPatch) Apply(e *Equipo) {
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
	if p.IDCompania != nil {
		e.IDCompania = *p.IDCompania
	}
	if p.IDLider != nil {
		e.IDLider = p.IDLider
	}
	if p.IDEstado != nil {
		e.IDEstado = *p.IDEstado
	}
}
