package client

import "time"

// DireccionDTO address as served by Geolocalización
type DireccionDTO struct {
	IDDireccion       int64  `json:"id_direccion,omitempty"`
	Calle             string `json:"calle"`
	Numero            string `json:"numero"`
	Villa             string `json:"villa,omitempty"`
	Complemento       string `json:"complemento,omitempty"`
	IDComuna          int64  `json:"id_comuna"`
	IDGeolocalizacion *int64 `json:"id_geolocalizacion,omitempty"`
}

// EstadoDTO status as served by Registros
type EstadoDTO struct {
	IDEstado    int64  `json:"id_estado"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// FotoDTO stored picture as served by Registros
type FotoDTO struct {
	IDFoto      int64     `json:"id_foto"`
	URL         string    `json:"url"`
	Tipo        string    `json:"tipo"`
	Tamano      int64     `json:"tamano"`
	FechaSubida time.Time `json:"fecha_subida"`
}

// HistorialDTO audit row stored by Registros
type HistorialDTO struct {
	IDHistorial      int64     `json:"id_historial,omitempty"`
	Entidad          string    `json:"entidad"`
	IDEntidad        int64     `json:"id_entidad"`
	IDEstadoAnterior *int64    `json:"id_estado_anterior,omitempty"`
	IDEstadoNuevo    int64     `json:"id_estado_nuevo"`
	Detalle          string    `json:"detalle,omitempty"`
	FechaHistorial   time.Time `json:"fecha_historial,omitempty"`
}

// UsuarioDTO user profile as served by Perfiles
type UsuarioDTO struct {
	IDUsuario     int64  `json:"id_usuario"`
	Run           string `json:"run"`
	Dv            string `json:"dv"`
	Nombre        string `json:"nombre"`
	APaterno      string `json:"a_paterno"`
	AMaterno      string `json:"a_materno,omitempty"`
	Telefono      string `json:"telefono"`
	Correo        string `json:"correo"`
	IDTipoUsuario int64  `json:"id_tipo_usuario"`
	IDEstado      int64  `json:"id_estado"`
}

// CiudadanoDTO citizen profile as served by Perfiles
type CiudadanoDTO struct {
	IDUsuario   int64 `json:"id_usuario"`
	IDDireccion int64 `json:"id_direccion"`
}
