package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-perfiles/internal/domain"
	"safe-rescue/safe-perfiles/internal/repository"

	"go.uber.org/zap"
)

// CompaniaService fire companies; the address is checked against Geolocalización
type CompaniaService struct {
	repo   repository.CompaniaRepository
	geo    GeolocalizacionClient
	logger *zap.Logger
}

func NewCompaniaService(repo repository.CompaniaRepository, geo GeolocalizacionClient, logger *zap.Logger) *CompaniaService {
	return &CompaniaService{repo: repo, geo: geo, logger: logger}
}

func (s *CompaniaService) FindAll(ctx context.Context) ([]domain.Compania, error) {
	return s.repo.FindAll(ctx)
}

func (s *CompaniaService) FindByID(ctx context.Context, id int64) (*domain.Compania, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CompaniaService) Save(ctx context.Context, c *domain.Compania) (*domain.Compania, error) {
	if c == nil {
		return nil, errs.Invalid("compania is required")
	}
	c.IDCompania = 0
	if err := s.validate(ctx, c, true); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *CompaniaService) Update(ctx context.Context, id int64, patch *domain.CompaniaPatch) (*domain.Compania, error) {
	if patch == nil {
		return nil, errs.Invalid("compania is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(current)
	if err := s.validate(ctx, current, patch.IDDireccion != nil); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *CompaniaService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *CompaniaService) validate(ctx context.Context, c *domain.Compania, checkDireccion bool) error {
	c.Normalize()
	if err := validation.Struct(c); err != nil {
		return err
	}
	if !checkDireccion {
		return nil
	}
	_, err := s.geo.GetDireccion(ctx, c.IDDireccion)
	return err
}
