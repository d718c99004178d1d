package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-geolocalizacion/internal/domain"
	"safe-rescue/safe-geolocalizacion/internal/repository"

	"go.uber.org/zap"
)

// CoordenadasService point CRUD
type CoordenadasService struct {
	repo   repository.CoordenadasRepository
	logger *zap.Logger
}

func NewCoordenadasService(repo repository.CoordenadasRepository, logger *zap.Logger) *CoordenadasService {
	return &CoordenadasService{repo: repo, logger: logger}
}

func (s *CoordenadasService) FindAll(ctx context.Context) ([]domain.Coordenadas, error) {
	return s.repo.FindAll(ctx)
}

func (s *CoordenadasService) FindByID(ctx context.Context, id int64) (*domain.Coordenadas, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CoordenadasService) Save(ctx context.Context, c *domain.Coordenadas) (*domain.Coordenadas, error) {
	if c == nil {
		return nil, errs.Invalid("coordenadas is required")
	}
	c.IDGeolocalizacion = 0
	if err := validation.Struct(c); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *CoordenadasService) Update(ctx context.Context, id int64, patch *domain.CoordenadasPatch) (*domain.Coordenadas, error) {
	if patch == nil {
		return nil, errs.Invalid("coordenadas is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(current)
	if err := validation.Struct(current); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *CoordenadasService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
