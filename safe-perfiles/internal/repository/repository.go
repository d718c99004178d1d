package repository

import (
	"context"

	"safe-rescue/safe-perfiles/internal/domain"
)

// TipoUsuarioRepository role persistence
type TipoUsuarioRepository interface {
	FindAll(ctx context.Context) ([]domain.TipoUsuario, error)
	FindByID(ctx context.Context, id int64) (*domain.TipoUsuario, error)
	Create(ctx context.Context, t *domain.TipoUsuario) (*domain.TipoUsuario, error)
	Update(ctx context.Context, t *domain.TipoUsuario) error
	Delete(ctx context.Context, id int64) error
}

// CompaniaRepository company persistence
type CompaniaRepository interface {
	FindAll(ctx context.Context) ([]domain.Compania, error)
	FindByID(ctx context.Context, id int64) (*domain.Compania, error)
	Create(ctx context.Context, c *domain.Compania) (*domain.Compania, error)
	Update(ctx context.Context, c *domain.Compania) error
	Delete(ctx context.Context, id int64) error
}

// EquipoRepository team persistence
type EquipoRepository interface {
	FindAll(ctx context.Context) ([]domain.Equipo, error)
	FindByID(ctx context.Context, id int64) (*domain.Equipo, error)
	FindByCompania(ctx context.Context, idCompania int64) ([]domain.Equipo, error)
	Create(ctx context.Context, e *domain.Equipo) (*domain.Equipo, error)
	Update(ctx context.Context, e *domain.Equipo) error
	Delete(ctx context.Context, id int64) error
}

// UsuarioRepository user persistence; the hash column is read and written through PasswordHash
type UsuarioRepository interface {
	FindAll(ctx context.Context) ([]domain.Usuario, error)
	FindByID(ctx context.Context, id int64) (*domain.Usuario, error)
	Create(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error)
	Update(ctx context.Context, u *domain.Usuario) error
	Delete(ctx context.Context, id int64) error
}

// CiudadanoRepository citizen profile persistence
type CiudadanoRepository interface {
	FindAll(ctx context.Context) ([]domain.Ciudadano, error)
	FindByID(ctx context.Context, idUsuario int64) (*domain.Ciudadano, error)
	Create(ctx context.Context, c *domain.Ciudadano) (*domain.Ciudadano, error)
	Update(ctx context.Context, c *domain.Ciudadano) error
	Delete(ctx context.Context, idUsuario int64) error
}

// BomberoRepository firefighter profile persistence
type BomberoRepository interface {
	FindAll(ctx context.Context) ([]domain.Bombero, error)
	FindByID(ctx context.Context, idUsuario int64) (*domain.Bombero, error)
	FindByEquipo(ctx context.Context, idEquipo int64) ([]domain.Bombero, error)
	Create(ctx context.Context, b *domain.Bombero) (*domain.Bombero, error)
	Update(ctx context.Context, b *domain.Bombero) error
	Delete(ctx context.Context, idUsuario int64) error
}

// HistorialUsuarioRepository append-only audit rows
type HistorialUsuarioRepository interface {
	FindAll(ctx context.Context) ([]domain.HistorialUsuario, error)
	FindByID(ctx context.Context, id int64) (*domain.HistorialUsuario, error)
	FindByUsuario(ctx context.Context, idUsuario int64) ([]domain.HistorialUsuario, error)
	Create(ctx context.Context, h *domain.HistorialUsuario) (*domain.HistorialUsuario, error)
}
