package domain

import "strings"

// Categoria classification label (table categoria)
type Categoria struct {
	IDCategoria int64  `json:"id_categoria" db:"id_categoria"`
	Nombre      string `json:"nombre" db:"nombre" validate:"required,max=50"`
	Descripcion string `json:"descripcion,omitempty" db:"descripcion" validate:"max=100"`
}

type CategoriaPatch struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

func (c *Categoria) Normalize() {
	c.Nombre = strings.TrimSpace(c.Nombre)
	c.Descripcion = strings.TrimSpace(c.Descripcion)
}

func (p CategoriaPatch) Apply(e *Categoria) {
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
	if p.Descripcion != nil {
		e.Descripcion = *p.Descripcion
	}
}
