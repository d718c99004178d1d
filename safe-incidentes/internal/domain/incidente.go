package domain

import (
	"strings"
	"time"
)

// Incidente emergency reported by a ciudadano. Ciudadano and asignado live in Perfiles,
// estado and foto in Registros, direccion in Geolocalización.
type Incidente struct {
	IDIncidente       int64     `json:"id_incidente" db:"id_incidente"`
	Titulo            string    `json:"titulo" db:"titulo" validate:"required,max=50"`
	Detalle           string    `json:"detalle" db:"detalle" validate:"required,max=400"`
	FechaRegistro     time.Time `json:"fecha_registro" db:"fecha_registro"`
	IDTipoIncidente   int64     `json:"id_tipo_incidente" db:"id_tipo_incidente" validate:"required"`
	IDCiudadano       int64     `json:"id_ciudadano" db:"id_ciudadano" validate:"required"`
	IDEstado          int64     `json:"id_estado" db:"id_estado" validate:"required"`
	IDDireccion       int64     `json:"id_direccion" db:"id_direccion" validate:"required"`
	IDUsuarioAsignado *int64    `json:"id_usuario_asignado,omitempty" db:"id_usuario_asignado"`
	IDFoto            *int64    `json:"id_foto,omitempty" db:"id_foto"`
}

type IncidentePatch struct {
	Titulo            *string `json:"titulo"`
	Detalle           *string `json:"detalle"`
	IDTipoIncidente   *int64  `json:"id_tipo_incidente"`
	IDCiudadano       *int64  `json:"id_ciudadano"`
	IDEstado          *int64  `json:"id_estado"`
	IDDireccion       *int64  `json:"id_direccion"`
	IDUsuarioAsignado *int64  `json:"id_usuario_asignado"`
	IDFoto            *int64  `json:"id_foto"`
}

func (i *Incidente) Normalize() {
	i.Titulo = strings.TrimSpace(i.Titulo)
	i.Detalle = strings.TrimSpace(i.Detalle)
}

func (p IncidentePatch) Apply(e *Incidente) {
	if p.Titulo != nil {
		e.Titulo = *p.Titulo
	}
	if p.Detalle != nil {
		e.Detalle = *p.Detalle
	}
	if p.IDTipoIncidente != nil {
		e.IDTipoIncidente = *p.IDTipoIncidente
	}
	if p.IDCiudadano != nil {
		e.IDCiudadano = *p.IDCiudadano
	}
	if p.IDEstado != nil {
		e.IDEstado = *p.IDEstado
	}
	if p.IDDireccion != nil {
		e.IDDireccion = *p.IDDireccion
	}
	if p.IDUsuarioAsignado != nil {
		e.IDUsuarioAsignado = p.IDUsuarioAsignado
	}
	if p.IDFoto != nil {
		e.IDFoto = p.IDFoto
	}
}

// DireccionRegistro inline address accepted by the incident report endpoint
type DireccionRegistro struct {
	Calle             string `json:"calle"`
	Numero            string `json:"numero"`
	Villa             string `json:"villa,omitempty"`
	Complemento       string `json:"complemento,omitempty"`
	IDComuna          int64  `json:"id_comuna"`
	IDGeolocalizacion *int64 `json:"id_geolocalizacion,omitempty"`
}

// IncidenteRegistro incident plus the address where it happened
type IncidenteRegistro struct {
	Incidente *Incidente         `json:"incidente"`
	Direccion *DireccionRegistro `json:"direccion"`
}

// IncidenteResumen one row of the spreadsheet export
type IncidenteResumen struct {
	IDIncidente       int64
	Titulo            string
	Tipo              string
	Detalle           string
	FechaRegistro     time.Time
	IDCiudadano       int64
	IDEstado          int64
	IDDireccion       int64
	IDUsuarioAsignado *int64
}
