package domain

import (
	"strings"
	"time"
)

// HistorialUsuario audit row for a usuario, equipo or compania change (table historial_usuario)
type HistorialUsuario struct {
	IDHistorial    int64     `json:"id_historial" db:"id_historial"`
	IDUsuario      *int64    `json:"id_usuario,omitempty" db:"id_usuario"`
	IDEquipo       *int64    `json:"id_equipo,omitempty" db:"id_equipo"`
	IDCompania     *int64    `json:"id_compania,omitempty" db:"id_compania"`
	EstadoAnterior string    `json:"estado_anterior,omitempty" db:"estado_anterior" validate:"max=50"`
	EstadoNuevo    string    `json:"estado_nuevo" db:"estado_nuevo" validate:"required,max=50"`
	Detalle        string    `json:"detalle,omitempty" db:"detalle" validate:"max=250"`
	FechaHistorial time.Time `json:"fecha_historial" db:"fecha_historial"`
}

func (h *HistorialUsuario) Normalize() {
	h.EstadoAnterior = strings.TrimSpace(h.EstadoAnterior)
	h.EstadoNuevo = strings.TrimSpace(h.EstadoNuevo)
	h.Detalle = strings.TrimSpace(h.Detalle)
}
