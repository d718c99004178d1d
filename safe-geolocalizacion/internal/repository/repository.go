package repository

import (
	"context"

	"safe-rescue/safe-geolocalizacion/internal/domain"
)

// PaisRepository country persistence
type PaisRepository interface {
	FindAll(ctx context.Context) ([]domain.Pais, error)
	FindByID(ctx context.Context, id int64) (*domain.Pais, error)
	Create(ctx context.Context, p *domain.Pais) (*domain.Pais, error)
	Update(ctx context.Context, p *domain.Pais) error
	Delete(ctx context.Context, id int64) error
}

// RegionRepository region persistence
type RegionRepository interface {
	FindAll(ctx context.Context) ([]domain.Region, error)
	FindByPais(ctx context.Context, idPais int64) ([]domain.Region, error)
	FindByID(ctx context.Context, id int64) (*domain.Region, error)
	Create(ctx context.Context, r *domain.Region) (*domain.Region, error)
	Update(ctx context.Context, r *domain.Region) error
	Delete(ctx context.Context, id int64) error
}

// ComunaRepository comuna persistence
type ComunaRepository interface {
	FindAll(ctx context.Context) ([]domain.Comuna, error)
	FindByRegion(ctx context.Context, idRegion int64) ([]domain.Comuna, error)
	FindByID(ctx context.Context, id int64) (*domain.Comuna, error)
	Create(ctx context.Context, c *domain.Comuna) (*domain.Comuna, error)
	Update(ctx context.Context, c *domain.Comuna) error
	Delete(ctx context.Context, id int64) error
}

// CoordenadasRepository point persistence
type CoordenadasRepository interface {
	FindAll(ctx context.Context) ([]domain.Coordenadas, error)
	FindByID(ctx context.Context, id int64) (*domain.Coordenadas, error)
	Create(ctx context.Context, c *domain.Coordenadas) (*domain.Coordenadas, error)
	Update(ctx context.Context, c *domain.Coordenadas) error
	Delete(ctx context.Context, id int64) error
}

// DireccionRepository address persistence
type DireccionRepository interface {
	FindAll(ctx context.Context) ([]domain.Direccion, error)
	FindByID(ctx context.Context, id int64) (*domain.Direccion, error)
	FindDetalle(ctx context.Context, id int64) (*domain.DireccionDetalle, error)
	Create(ctx context.Context, d *domain.Direccion) (*domain.Direccion, error)
	Update(ctx context.Context, d *domain.Direccion) error
	Delete(ctx context.Context, id int64) error
}
