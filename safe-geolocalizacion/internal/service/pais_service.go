package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-geolocalizacion/internal/domain"
	"safe-rescue/safe-geolocalizacion/internal/repository"

	"go.uber.org/zap"
)

// PaisService country CRUD
type PaisService struct {
	repo   repository.PaisRepository
	logger *zap.Logger
}

func NewPaisService(repo repository.PaisRepository, logger *zap.Logger) *PaisService {
	return &PaisService{repo: repo, logger: logger}
}

func (s *PaisService) FindAll(ctx context.Context) ([]domain.Pais, error) {
	return s.repo.FindAll(ctx)
}

func (s *PaisService) FindByID(ctx context.Context, id int64) (*domain.Pais, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaisService) Save(ctx context.Context, p *domain.Pais) (*domain.Pais, error) {
	if p == nil {
		return nil, errs.Invalid("pais is required")
	}
	p.IDPais = 0
	p.Normalize()
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *PaisService) Update(ctx context.Context, id int64, patch *domain.PaisPatch) (*domain.Pais, error) {
	if patch == nil {
		return nil, errs.Invalid("pais is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(current)
	current.Normalize()
	if err := validation.Struct(current); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *PaisService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
