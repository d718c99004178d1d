package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-registros/internal/domain"
	"safe-rescue/safe-registros/internal/repository"

	"go.uber.org/zap"
)

// EstadoService status catalogue used by every other service
type EstadoService struct {
	repo   repository.EstadoRepository
	logger *zap.Logger
}

func NewEstadoService(repo repository.EstadoRepository, logger *zap.Logger) *EstadoService {
	return &EstadoService{repo: repo, logger: logger}
}

func (s *EstadoService) FindAll(ctx context.Context) ([]domain.Estado, error) {
	return s.repo.FindAll(ctx)
}

func (s *EstadoService) FindByID(ctx context.Context, id int64) (*domain.Estado, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EstadoService) Save(ctx context.Context, e *domain.Estado) (*domain.Estado, error) {
	if e == nil {
		return nil, errs.Invalid("estado is required")
	}
	e.IDEstado = 0
	e.Normalize()
	if err := validation.Struct(e); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, e)
}

func (s *EstadoService) Update(ctx context.Context, id int64, patch *domain.EstadoPatch) (*domain.Estado, error) {
	if patch == nil {
		return nil, errs.Invalid("estado is required")
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

func (s *EstadoService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
