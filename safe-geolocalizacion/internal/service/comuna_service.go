package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-geolocalizacion/internal/domain"
	"safe-rescue/safe-geolocalizacion/internal/repository"

	"go.uber.org/zap"
)

// ComunaService comuna CRUD; every comuna belongs to an existing region
type ComunaService struct {
	repo       repository.ComunaRepository
	regionRepo repository.RegionRepository
	logger     *zap.Logger
}

func NewComunaService(repo repository.ComunaRepository, regionRepo repository.RegionRepository, logger *zap.Logger) *ComunaService {
	return &ComunaService{repo: repo, regionRepo: regionRepo, logger: logger}
}

func (s *ComunaService) FindAll(ctx context.Context) ([]domain.Comuna, error) {
	return s.repo.FindAll(ctx)
}

func (s *ComunaService) FindByID(ctx context.Context, id int64) (*domain.Comuna, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByRegion lists the comunas of a region
func (s *ComunaService) FindByRegion(ctx context.Context, idRegion int64) ([]domain.Comuna, error) {
	if _, err := s.regionRepo.FindByID(ctx, idRegion); err != nil {
		return nil, err
	}
	return s.repo.FindByRegion(ctx, idRegion)
}

func (s *ComunaService) Save(ctx context.Context, c *domain.Comuna) (*domain.Comuna, error) {
	if c == nil {
		return nil, errs.Invalid("comuna is required")
	}
	c.IDComuna = 0
	if err := s.validate(ctx, c); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *ComunaService) Update(ctx context.Context, id int64, patch *domain.ComunaPatch) (*domain.Comuna, error) {
	if patch == nil {
		return nil, errs.Invalid("comuna is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(current)
	if err := s.validate(ctx, current); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *ComunaService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ComunaService) validate(ctx context.Context, c *domain.Comuna) error {
	c.Normalize()
	if err := validation.Struct(c); err != nil {
		return err
	}
	return requireExisting(ctx, "id_region", c.IDRegion, func(ctx context.Context, id int64) error {
		_, err := s.regionRepo.FindByID(ctx, id)
		return err
	})
}
