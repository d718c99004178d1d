package client

import (
	"context"
	"io"

	"safe-rescue/safe-common/errs"
)

const (
	estadosPath     = "/api-registros/v1/estados"
	fotosUploadPath = "/api-registros/v1/fotos/upload"
	historialPath   = "/api-registros/v1/historial"
)

// RegistrosClient talks to the Registros service (estados, fotos, historial)
type RegistrosClient struct {
	base baseClient
}

func NewRegistrosClient(opts Options) *RegistrosClient {
	return &RegistrosClient{base: newBaseClient("registros", opts)}
}

func (c *RegistrosClient) GetEstado(ctx context.Context, id int64) (*EstadoDTO, error) {
	return getByID[EstadoDTO](ctx, &c.base, estadosPath, "estado", id)
}

// UploadFoto sends the picture as multipart field "archivo" and returns the stored Foto
func (c *RegistrosClient) UploadFoto(ctx context.Context, filename string, r io.Reader) (*FotoDTO, error) {
	if r == nil {
		return nil, errs.Invalid("archivo is required")
	}
	var env envelope[FotoDTO]
	resp, err := c.base.write(ctx).
		SetFileReader("archivo", filename, r).
		SetResult(&env).
		Post(fotosUploadPath)
	if err := c.base.check(resp, err, "foto", 0); err != nil {
		return nil, err
	}
	return &env.Result, nil
}

// CreateHistorial appends an audit row
func (c *RegistrosClient) CreateHistorial(ctx context.Context, h *HistorialDTO) (*HistorialDTO, error) {
	return post[HistorialDTO](ctx, &c.base, historialPath, "historial", h)
}
