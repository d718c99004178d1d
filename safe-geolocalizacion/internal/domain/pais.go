package domain

import "strings"

// Pais country (table pais)
type Pais struct {
	IDPais    int64  `json:"id_pais" db:"id_pais"`
	Nombre    string `json:"nombre" db:"nombre" validate:"required,max=50"`
	CodigoISO string `json:"codigo_iso" db:"codigo_iso" validate:"required,max=3"`
}

// PaisPatch partial update; nil fields are left untouched
type PaisPatch struct {
	Nombre    *string `json:"nombre"`
	CodigoISO *string `json:"codigo_iso"`
}

func (p *Pais) Normalize() {
	p.Nombre = strings.TrimSpace(p.Nombre)
	p.CodigoISO = strings.ToUpper(strings.TrimSpace(p.CodigoISO))
}

func (p PaisPatch) Apply(e *Pais) {
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
	if p.CodigoISO != nil {
		e.CodigoISO = *p.CodigoISO
	}
}
