package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-perfiles/internal/domain"
	"safe-rescue/safe-perfiles/internal/repository"

	"go.uber.org/zap"
)

// TipoUsuarioService role catalogue
type TipoUsuarioService struct {
	repo   repository.TipoUsuarioRepository
	logger *zap.Logger
}

func NewTipoUsuarioService(repo repository.TipoUsuarioRepository, logger *zap.Logger) *TipoUsuarioService {
	return &TipoUsuarioService{repo: repo, logger: logger}
}

func (s *TipoUsuarioService) FindAll(ctx context.Context) ([]domain.TipoUsuario, error) {
	return s.repo.FindAll(ctx)
}

func (s *TipoUsuarioService) FindByID(ctx context.Context, id int64) (*domain.TipoUsuario, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TipoUsuarioService) Save(ctx context.Context, t *domain.TipoUsuario) (*domain.TipoUsuario, error) {
	if t == nil {
		return nil, errs.Invalid("tipo_usuario is required")
	}
	t.IDTipoUsuario = 0
	t.Normalize()
	if err := validation.Struct(t); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, t)
}

func (s *TipoUsuarioService) Update(ctx context.Context, id int64, patch *domain.TipoUsuarioPatch) (*domain.TipoUsuario, error) {
	if patch == nil {
		return nil, errs.Invalid("tipo_usuario is required")
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

func (s *TipoUsuarioService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
