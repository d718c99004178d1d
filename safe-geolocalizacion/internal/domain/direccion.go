package domain

import "strings"

// Direccion street address (table direccion)
type Direccion struct {
	IDDireccion       int64  `json:"id_direccion" db:"id_direccion"`
	Calle             string `json:"calle" db:"calle" validate:"required,max=50"`
	Numero            string `json:"numero" db:"numero" validate:"required,max=5"`
	Villa             string `json:"villa,omitempty" db:"villa" validate:"max=50"`
	Complemento       string `json:"complemento,omitempty" db:"complemento" validate:"max=50"`
	IDComuna          int64  `json:"id_comuna" db:"id_comuna" validate:"required"`
	IDGeolocalizacion *int64 `json:"id_geolocalizacion,omitempty" db:"id_geolocalizacion"`
}

type DireccionPatch struct {
	Calle             *string `json:"calle"`
	Numero            *string `json:"numero"`
	Villa             *string `json:"villa"`
	Complemento       *string `json:"complemento"`
	IDComuna          *int64  `json:"id_comuna"`
	IDGeolocalizacion *int64  `json:"id_geolocalizacion"`
}

func (d *Direccion) Normalize() {
	d.Calle = strings.TrimSpace(d.Calle)
	d.Numero = strings.TrimSpace(d.Numero)
	d.Villa = strings.TrimSpace(d.Villa)
	d.Complemento = strings.TrimSpace(d.Complemento)
}

func (p DireccionPatch) Apply(e *Direccion) {
	if p.Calle != nil {
		e.Calle = *p.Calle
	}
	if p.Numero != nil {
		e.Numero = *p.Numero
	}
	if p.Villa != nil {
		e.Villa = *p.Villa
	}
	if p.Complemento != nil {
		e.Complemento = *p.Complemento
	}
	if p.IDComuna != nil {
		e.IDComuna = *p.IDComuna
	}
	if p.IDGeolocalizacion != nil {
		e.IDGeolocalizacion = p.IDGeolocalizacion
	}
}

// DireccionDetalle address joined with its comuna/region/pais names
type DireccionDetalle struct {
	Direccion
	Comuna      string       `json:"comuna"`
	Region      string       `json:"region"`
	Pais        string       `json:"pais"`
	Coordenadas *Coordenadas `json:"coordenadas,omitempty"`
}
