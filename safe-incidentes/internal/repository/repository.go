package repository

import (
	"context"

	"safe-rescue/safe-incidentes/internal/domain"
)

// TipoIncidenteRepository incident category persistence
type TipoIncidenteRepository interface {
	FindAll(ctx context.Context) ([]domain.TipoIncidente, error)
	FindByID(ctx context.Context, id int64) (*domain.TipoIncidente, error)
	Create(ctx context.Context, t *domain.TipoIncidente) (*domain.TipoIncidente, error)
	Update(ctx context.Context, t *domain.TipoIncidente) error
	Delete(ctx context.Context, id int64) error
}

// IncidenteRepository incident persistence
type IncidenteRepository interface {
	FindAll(ctx context.Context) ([]domain.Incidente, error)
	FindByID(ctx context.Context, id int64) (*domain.Incidente, error)
	// FindByCiudadano newest first
	FindByCiudadano(ctx context.Context, idCiudadano int64) ([]domain.Incidente, error)
	Create(ctx context.Context, i *domain.Incidente) (*domain.Incidente, error)
	Update(ctx context.Context, i *domain.Incidente) error
	Delete(ctx context.Context, id int64) error
}
