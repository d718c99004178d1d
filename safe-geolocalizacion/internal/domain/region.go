package domain

import "strings"

// Region first-level administrative division (table region)
type Region struct {
	IDRegion       int64  `json:"id_region" db:"id_region"`
	Nombre         string `json:"nombre" db:"nombre" validate:"required,max=50"`
	Identificacion string `json:"identificacion" db:"identificacion" validate:"required,max=5"` // e.g. "RM", "V"
	IDPais         int64  `json:"id_pais" db:"id_pais" validate:"required"`
}

type RegionPatch struct {
	Nombre         *string `json:"nombre"`
	Identificacion *string `json:"identificacion"`
	IDPais         *int64  `json:"id_pais"`
}

func (r *Region) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Identificacion = strings.ToUpper(strings.TrimSpace(r.Identificacion))
}

func (p RegionPatch) Apply(e *Region) {
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
	if p.Identificacion != nil {
		e.Identificacion = *p.Identificacion
	}
	if p.IDPais != nil {
		e.IDPais = *p.IDPais
	}
}
