package domain

import (
	"strings"
	"time"
)

// HistorialMensaje append-only record of a mensaje estado transition
type HistorialMensaje struct {
	IDHistorial      int64     `json:"id_historial" db:"id_historial"`
	IDMensaje        int64     `json:"id_mensaje" db:"id_mensaje" validate:"required"`
	IDEstadoAnterior *int64    `json:"id_estado_anterior,omitempty" db:"id_estado_anterior"`
	IDEstadoNuevo    int64     `json:"id_estado_nuevo" db:"id_estado_nuevo" validate:"required"`
	Detalle          string    `json:"detalle,omitempty" db:"detalle" validate:"max=250"`
	FechaHistorial   time.Time `json:"fecha_historial" db:"fecha_historial"`
}

func (h *HistorialMensaje) Normalize() {
	h.Detalle = strings.TrimSpace(h.Detalle)
}
