package domain

import "strings"

// TipoIncidente incident category (table tipo_incidente); nombre is unique
type TipoIncidente struct {
	IDTipoIncidente int64  `json:"id_tipo_incidente" db:"id_tipo_incidente"`
	Nombre          string `json:"nombre" db:"nombre" validate:"required,max=50"`
}

type TipoIncidentePatch struct {
	Nombre *string `json:"nombre"`
}

func (t *TipoIncidente) Normalize() {
	t.Nombre = strings.TrimSpace(t.Nombre)
}

func (p TipoIncidentePatch) Apply(e *TipoIncidente) {
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
}
