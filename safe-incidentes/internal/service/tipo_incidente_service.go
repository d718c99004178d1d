package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-incidentes/internal/domain"
	"safe-rescue/safe-incidentes/internal/repository"

	"go.uber.org/zap"
)

type TipoIncidenteService struct {
	repo   repository.TipoIncidenteRepository
	logger *zap.Logger
}

func NewTipoIncidenteService(repo repository.TipoIncidenteRepository, logger *zap.Logger) *TipoIncidenteService {
	return &TipoIncidenteService{repo: repo, logger: logger}
}

func (s *TipoIncidenteService) FindAll(ctx context.Context) ([]domain.TipoIncidente, error) {
	return s.repo.FindAll(ctx)
}

func (s *TipoIncidenteService) FindByID(ctx context.Context, id int64) (*domain.TipoIncidente, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TipoIncidenteService) Save(ctx context.Context, t *domain.TipoIncidente) (*domain.TipoIncidente, error) {
	if t == nil {
		return nil, errs.Invalid("tipo_incidente is required")
	}
	t.IDTipoIncidente = 0
	t.Normalize()
	if err := validation.Struct(t); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, t)
}

func (s *TipoIncidenteService) Update(ctx context.Context, id int64, patch *domain.TipoIncidentePatch) (*domain.TipoIncidente, error) {
	if patch == nil {
		return nil, errs.Invalid("tipo_incidente is required")
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

func (s *TipoIncidenteService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
