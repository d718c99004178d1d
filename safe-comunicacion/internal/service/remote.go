package service

import (
	"context"
	"errors"

	"safe-rescue/safe-common/client"
	"safe-rescue/safe-common/errs"
)

// PerfilesClient user lookups in Perfiles
type PerfilesClient interface {
	GetUsuario(ctx context.Context, id int64) (*client.UsuarioDTO, error)
}

// RegistrosClient estado lookups in Registros
type RegistrosClient interface {
	GetEstado(ctx context.Context, id int64) (*client.EstadoDTO, error)
}

// requireLocal turns a NotFound on a referenced row into a validation error
func requireLocal(field string, id int64, err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return errs.Invalid("%s %d does not exist", field, id)
	}
	return err
}
