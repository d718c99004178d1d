package client

import "context"

const (
	usuariosPath   = "/api-perfiles/v1/usuarios"
	ciudadanosPath = "/api-perfiles/v1/ciudadanos"
)

// PerfilesClient looks up users and citizens in the Perfiles service
type PerfilesClient struct {
	base baseClient
}

func NewPerfilesClient(opts Options) *PerfilesClient {
	return &PerfilesClient{base: newBaseClient("perfiles", opts)}
}

func (c *PerfilesClient) GetUsuario(ctx context.Context, id int64) (*UsuarioDTO, error) {
	return getByID[UsuarioDTO](ctx, &c.base, usuariosPath, "usuario", id)
}

// GetCiudadano citizen profile keyed by id_usuario
func (c *PerfilesClient) GetCiudadano(ctx context.Context, idUsuario int64) (*CiudadanoDTO, error) {
	return getByID[CiudadanoDTO](ctx, &c.base, ciudadanosPath, "ciudadano", idUsuario)
}
