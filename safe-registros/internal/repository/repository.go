package repository

import (
	"context"

	"safe-rescue/safe-registros/internal/domain"
)

// EstadoRepository status persistence
type EstadoRepository interface {
	FindAll(ctx context.Context) ([]domain.Estado, error)
	FindByID(ctx context.Context, id int64) (*domain.Estado, error)
	Create(ctx context.Context, e *domain.Estado) (*domain.Estado, error)
	Update(ctx context.Context, e *domain.Estado) error
	Delete(ctx context.Context, id int64) error
}

// CategoriaRepository category persistence
type CategoriaRepository interface {
	FindAll(ctx context.Context) ([]domain.Categoria, error)
	FindByID(ctx context.Context, id int64) (*domain.Categoria, error)
	Create(ctx context.Context, c *domain.Categoria) (*domain.Categoria, error)
	Update(ctx context.Context, c *domain.Categoria) error
	Delete(ctx context.Context, id int64) error
}

// FotoRepository picture metadata persistence
type FotoRepository interface {
	FindAll(ctx context.Context) ([]domain.Foto, error)
	FindByID(ctx context.Context, id int64) (*domain.Foto, error)
	Create(ctx context.Context, f *domain.Foto) (*domain.Foto, error)
	Update(ctx context.Context, f *domain.Foto) error
	Delete(ctx context.Context, id int64) error
}

// HistorialRepository audit trail persistence; rows are never updated or deleted
type HistorialRepository interface {
	FindAll(ctx context.Context) ([]domain.Historial, error)
	FindByID(ctx context.Context, id int64) (*domain.Historial, error)
	FindByEntidad(ctx context.Context, entidad string, idEntidad int64) ([]domain.Historial, error)
	Create(ctx context.Context, h *domain.Historial) (*domain.Historial, error)
}
