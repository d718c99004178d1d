package domain

import (
	"strings"
	"time"
)

// Foto stored picture metadata (table foto). URL points at the file server or an external host.
type Foto struct {
	IDFoto      int64     `json:"id_foto" db:"id_foto"`
	URL         string    `json:"url" db:"url" validate:"required,max=250"`
	Tipo        string    `json:"tipo,omitempty" db:"tipo" validate:"max=50"`
	Tamano      int64     `json:"tamano" db:"tamano" validate:"gte=0"`
	FechaSubida time.Time `json:"fecha_subida" db:"fecha_subida"`
}

type FotoPatch struct {
	URL    *string `json:"url"`
	Tipo   *string `json:"tipo"`
	Tamano *int64  `json:"tamano"`
}

func (f *Foto) Normalize() {
	f.URL = strings.TrimSpace(f.URL)
	f.Tipo = strings.TrimSpace(f.Tipo)
}

func (p FotoPatch) Apply(e *Foto) {
	if p.URL != nil {
		e.URL = *p.URL
	}
	if p.Tipo != nil {
		e.Tipo = *p.Tipo
	}
	if p.Tamano != nil {
		e.Tamano = *p.Tamano
	}
}
