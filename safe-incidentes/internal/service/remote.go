package service

import (
	"context"
	"errors"
	"io"

	"safe-rescue/safe-common/client"
	"safe-rescue/safe-common/errs"
)

// PerfilesClient citizen and responder lookups in Perfiles
type PerfilesClient interface {
	GetUsuario(ctx context.Context, id int64) (*client.UsuarioDTO, error)
	GetCiudadano(ctx context.Context, idUsuario int64) (*client.CiudadanoDTO, error)
}

// RegistrosClient estado lookups, pictures and the shared audit trail in Registros
type RegistrosClient interface {
	GetEstado(ctx context.Context, id int64) (*client.EstadoDTO, error)
	UploadFoto(ctx context.Context, filename string, r io.Reader) (*client.FotoDTO, error)
	CreateHistorial(ctx context.Context, h *client.HistorialDTO) (*client.HistorialDTO, error)
}

// GeolocalizacionClient address lookups and creation in Geolocalización
type GeolocalizacionClient interface {
	GetDireccion(ctx context.Context, id int64) (*client.DireccionDTO, error)
	SaveDireccion(ctx context.Context, d *client.DireccionDTO) (*client.DireccionDTO, error)
}

func requireLocal(field string, id int64, err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return errs.Invalid("%s %d does not exist", field, id)
	}
	return err
}
