package domain

import (
	"strings"
	"time"
)

// Compania fire company (table compania). IDDireccion lives in Geolocalización.
type Compania struct {
	IDCompania     int64      `json:"id_compania" db:"id_compania"`
	Nombre         string     `json:"nombre" db:"nombre" validate:"required,max=50"`
	FechaFundacion *time.Time `json:"fecha_fundacion,omitempty" db:"fecha_fundacion"`
	IDDireccion    int64      `json:"id_direccion" db:"id_direccion" validate:"required"`
}

type CompaniaPatch struct {
	Nombre         *string    `json:"nombre"`
	FechaFundacion *time.Time `json:"fecha_fundacion"`
	IDDireccion    *int64     `json:"id_direccion"`
}

func (c *Compania) Normalize() {
	c.Nombre = strings.TrimSpace(c.Nombre)
}

func (p CompaniaPatch) Apply(e *Compania) {
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
	if p.FechaFundacion != nil {
		e.FechaFundacion = p.FechaFundacion
	}
	if p.IDDireccion != nil {
		e.IDDireccion = *p.IDDireccion
	}
}
