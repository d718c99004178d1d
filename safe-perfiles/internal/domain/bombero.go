package domain

// Bombero firefighter profile of a usuario (table bombero, keyed by id_usuario)
type Bombero struct {
	IDUsuario int64 `json:"id_usuario" db:"id_usuario" validate:"required"`
	IDEquipo  int64 `json:"id_equipo" db:"id_equipo" validate:"required"`
}

type BomberoPatch struct {
	IDEquipo *int64 `json:"id_equipo"`
}

func (p BomberoPatch) Apply(e *Bombero) {
	if p.IDEquipo != nil {
		e.IDEquipo = *p.IDEquipo
	}
}
