package domain

import "strings"

// Comuna municipality (table comuna)
type Comuna struct {
	IDComuna     int64  `json:"id_comuna" db:"id_comuna"`
	Nombre       string `json:"nombre" db:"nombre" validate:"required,max=50"`
	CodigoPostal string `json:"codigo_postal,omitempty" db:"codigo_postal" validate:"omitempty,max=10,numeric"`
	IDRegion     int64  `json:"id_region" db:"id_region" validate:"required"`
}

type ComunaPatch struct {
	Nombre       *string `json:"nombre"`
	CodigoPostal *string `json:"codigo_postal"`
	IDRegion     *int64  `json:"id_region"`
}

func (c *Comuna) Normalize() {
	c.Nombre = strings.TrimSpace(c.Nombre)
	c.CodigoPostal = strings.TrimSpace(c.CodigoPostal)
}

func (p ComunaPatch) Apply(e *Comuna) {
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
	if p.CodigoPostal != nil {
		e.CodigoPostal = *p.CodigoPostal
	}
	if p.IDRegion != nil {
		e.IDRegion = *p.IDRegion
	}
}
