package service

import (
	"context"
	"errors"
	"io"
	"strconv"

	"safe-rescue/safe-common/client"
	"safe-rescue/safe-common/errs"

	"go.uber.org/zap"
)

// GeolocalizacionClient address lookups and creation in Geolocalización
type GeolocalizacionClient interface {
	GetDireccion(ctx context.Context, id int64) (*client.DireccionDTO, error)
	SaveDireccion(ctx context.Context, d *client.DireccionDTO) (*client.DireccionDTO, error)
}

// RegistrosClient estado lookups and picture uploads in Registros
type RegistrosClient interface {
	GetEstado(ctx context.Context, id int64) (*client.EstadoDTO, error)
	UploadFoto(ctx context.Context, filename string, r io.Reader) (*client.FotoDTO, error)
}

// requireLocal turns a NotFound on a referenced row into a validation error
func requireLocal(field string, id int64, err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return errs.Invalid("%s %d does not exist", field, id)
	}
	return err
}

// estadoNombre best-effort display name of an estado for audit rows
func estadoNombre(ctx context.Context, registros RegistrosClient, id int64, logger *zap.Logger) string {
	e, err := registros.GetEstado(ctx, id)
	if err != nil {
		logger.Warn("failed to resolve estado name", zap.Int64("id_estado", id), zap.Error(err))
		return strconv.FormatInt(id, 10)
	}
	return e.Nombre
}
