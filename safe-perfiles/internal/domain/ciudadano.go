package domain

// Ciudadano citizen profile of a usuario (table ciudadano, keyed by id_usuario)
type Ciudadano struct {
	IDUsuario   int64 `json:"id_usuario" db:"id_usuario" validate:"required"`
	IDDireccion int64 `json:"id_direccion" db:"id_direccion" validate:"required"`
}

type CiudadanoPatch struct {
	IDDireccion *int64 `json:"id_direccion"`
}

func (p CiudadanoPatch) Apply(e *Ciudadano) {
	if p.IDDireccion != nil {
		e.IDDireccion = *p.IDDireccion
	}
}

// DireccionRegistro inline address accepted by the citizen sign-up
type DireccionRegistro struct {
	Calle             string `json:"calle"`
	Numero            string `json:"numero"`
	Villa             string `json:"villa,omitempty"`
	Complemento       string `json:"complemento,omitempty"`
	IDComuna          int64  `json:"id_comuna"`
	IDGeolocalizacion *int64 `json:"id_geolocalizacion,omitempty"`
}

// CiudadanoRegistro sign-up payload: the user, and the address to create for it
type CiudadanoRegistro struct {
	Usuario   *Usuario           `json:"usuario"`
	Direccion *DireccionRegistro `json:"direccion"`
}

// CiudadanoPerfil sign-up result
type CiudadanoPerfil struct {
	Usuario   *Usuario   `json:"usuario"`
	Ciudadano *Ciudadano `json:"ciudadano"`
}
