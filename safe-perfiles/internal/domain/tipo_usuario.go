package domain

import "strings"

// TipoUsuario user role, e.g. "Ciudadano", "Bombero", "Administrador" (table tipo_usuario)
type TipoUsuario struct {
	IDTipoUsuario int64  `json:"id_tipo_usuario" db:"id_tipo_usuario"`
	Nombre        string `json:"nombre" db:"nombre" validate:"required,max=50"`
}

type TipoUsuarioPatch struct {
	Nombre *string `json:"nombre"`
}

func (t *TipoUsuario) Normalize() {
	t.Nombre = strings.TrimSpace(t.Nombre)
}

func (p TipoUsuarioPatch) Apply(e *TipoUsuario) {
	if p.Nombre != nil {
		e.Nombre = *p.Nombre
	}
}
