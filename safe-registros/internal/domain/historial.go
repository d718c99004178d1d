package domain

import (
	"strings"
	"time"
)

// Historial append-only record of a status transition of any entity (table historial)
type Historial struct {
	IDHistorial      int64     `json:"id_historial" db:"id_historial"`
	Entidad          string    `json:"entidad" db:"entidad" validate:"required,max=50"`
	IDEntidad        int64     `json:"id_entidad" db:"id_entidad" validate:"required"`
	IDEstadoAnterior *int64    `json:"id_estado_anterior,omitempty" db:"id_estado_anterior"`
	IDEstadoNuevo    int64     `json:"id_estado_nuevo" db:"id_estado_nuevo" validate:"required"`
	Detalle          string    `json:"detalle,omitempty" db:"detalle" validate:"max=250"`
	FechaHistorial   time.Time `json:"fecha_historial" db:"fecha_historial"`
}

// Normalize trims text and lower-cases the entity name so lookups are stable
func (h *Historial) Normalize() {
	h.Entidad = strings.ToLower(strings.TrimSpace(h.Entidad))
	h.Detalle = strings.TrimSpace(h.Detalle)
}
