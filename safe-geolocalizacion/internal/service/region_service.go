package service

import (
	"context"
	"errors"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-geolocalizacion/internal/domain"
	"safe-rescue/safe-geolocalizacion/internal/repository"

	"go.uber.org/zap"
)

// RegionService region CRUD; every region belongs to an existing pais
type RegionService struct {
	repo     repository.RegionRepository
	paisRepo repository.PaisRepository
	logger   *zap.Logger
}

func NewRegionService(repo repository.RegionRepository, paisRepo repository.PaisRepository, logger *zap.Logger) *RegionService {
	return &RegionService{repo: repo, paisRepo: paisRepo, logger: logger}
}

func (s *RegionService) FindAll(ctx context.Context) ([]domain.Region, error) {
	return s.repo.FindAll(ctx)
}

func (s *RegionService) FindByID(ctx context.Context, id int64) (*domain.Region, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByPais lists the regions of a country
func (s *RegionService) FindByPais(ctx context.Context, idPais int64) ([]domain.Region, error) {
	if _, err := s.paisRepo.FindByID(ctx, idPais); err != nil {
		return nil, err
	}
	return s.repo.FindByPais(ctx, idPais)
}

func (s *RegionService) Save(ctx context.Context, r *domain.Region) (*domain.Region, error) {
	if r == nil {
		return nil, errs.Invalid("region is required")
	}
	r.IDRegion = 0
	if err := s.validate(ctx, r); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, r)
}

func (s *RegionService) Update(ctx context.Context, id int64, patch *domain.RegionPatch) (*domain.Region, error) {
	if patch == nil {
		return nil, errs.Invalid("region is required")
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

func (s *RegionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *RegionService) validate(ctx context.Context, r *domain.Region) error {
	r.Normalize()
	if err := validation.Struct(r); err != nil {
		return err
	}
	return requireExisting(ctx, "id_pais", r.IDPais, func(ctx context.Context, id int64) error {
		_, err := s.paisRepo.FindByID(ctx, id)
		return err
	})
}

// requireExisting turns a NotFound on a referenced row into a validation error
func requireExisting(ctx context.Context, field string, id int64, find func(context.Context, int64) error) error {
	err := find(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return errs.Invalid("%s %d does not exist", field, id)
	}
	return err
}
