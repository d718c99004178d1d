package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-registros/internal/domain"
	"safe-rescue/safe-registros/internal/repository"

	"go.uber.org/zap"
)

// CategoriaService classification labels
type CategoriaService struct {
	repo   repository.CategoriaRepository
	logger *zap.Logger
}

func NewCategoriaService(repo repository.CategoriaRepository, logger *zap.Logger) *CategoriaService {
	return &CategoriaService{repo: repo, logger: logger}
}

func (s *CategoriaService) FindAll(ctx context.Context) ([]domain.Categoria, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoriaService) FindByID(ctx context.Context, id int64) (*domain.Categoria, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoriaService) Save(ctx context.Context, e *domain.Categoria) (*domain.Categoria, error) {
	if e == nil {
		return nil, errs.Invalid("categoria is required")
	}
	e.IDCategoria = 0
	e.Normalize()
	if err := validation.Struct(e); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, e)
}

func (s *CategoriaService) Update(ctx context.Context, id int64, patch *domain.CategoriaPatch) (*domain.Categoria, error) {
	if patch == nil {
		return nil, errs.Invalid("categoria is required")
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

func (s *CategoriaService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
