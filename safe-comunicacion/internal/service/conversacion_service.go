package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-comunicacion/internal/domain"
	"safe-rescue/safe-comunicacion/internal/repository"

	"go.uber.org/zap"
)

type ConversacionService struct {
	repo   repository.ConversacionRepository
	logger *zap.Logger
}

func NewConversacionService(repo repository.ConversacionRepository, logger *zap.Logger) *ConversacionService {
	return &ConversacionService{repo: repo, logger: logger}
}

func (s *ConversacionService) FindAll(ctx context.Context) ([]domain.Conversacion, error) {
	return s.repo.FindAll(ctx)
}

func (s *ConversacionService) FindByID(ctx context.Context, id int64) (*domain.Conversacion, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ConversacionService) Save(ctx context.Context, c *domain.Conversacion) (*domain.Conversacion, error) {
	if c == nil {
		return nil, errs.Invalid("conversacion is required")
	}
	c.IDConversacion = 0
	c.Normalize()
	if err := validation.Struct(c); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *ConversacionService) Update(ctx context.Context, id int64, patch *domain.ConversacionPatch) (*domain.Conversacion, error) {
	if patch == nil {
		return nil, errs.Invalid("conversacion is required")
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

func (s *ConversacionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
