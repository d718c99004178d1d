package client

import "context"

const direccionesPath = "/api-geolocalizacion/v1/direcciones"

// GeolocalizacionClient reads and writes addresses in the Geolocalización service
type GeolocalizacionClient struct {
	base baseClient
}

func NewGeolocalizacionClient(opts Options) *GeolocalizacionClient {
	return &GeolocalizacionClient{base: newBaseClient("geolocalizacion", opts)}
}

func (c *GeolocalizacionClient) GetDireccion(ctx context.Context, id int64) (*DireccionDTO, error) {
	return getByID[DireccionDTO](ctx, &c.base, direccionesPath, "direccion", id)
}

// SaveDireccion creates the address and returns it with its new id
func (c *GeolocalizacionClient) SaveDireccion(ctx context.Context, d *DireccionDTO) (*DireccionDTO, error) {
	return post[DireccionDTO](ctx, &c.base, direccionesPath, "direccion", d)
}
