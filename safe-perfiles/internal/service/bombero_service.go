package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-perfiles/internal/domain"
	"safe-rescue/safe-perfiles/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// BomberoService firefighter profiles; moving to another equipo is recorded in historial_usuario
type BomberoService struct {
	repo        repository.BomberoRepository
	usuarioRepo repository.UsuarioRepository
	equipoRepo  repository.EquipoRepository
	historial   repository.HistorialUsuarioRepository
	logger      *zap.Logger
}

func NewBomberoService(
	repo repository.BomberoRepository,
	usuarioRepo repository.UsuarioRepository,
	equipoRepo repository.EquipoRepository,
	historial repository.HistorialUsuarioRepository,
	logger *zap.Logger,
) *BomberoService {
	return &BomberoService{repo: repo, usuarioRepo: usuarioRepo, equipoRepo: equipoRepo, historial: historial, logger: logger}
}

func (s *BomberoService) FindAll(ctx context.Context) ([]domain.Bombero, error) {
	return s.repo.FindAll(ctx)
}

func (s *BomberoService) FindByID(ctx context.Context, idUsuario int64) (*domain.Bombero, error) {
	return s.repo.FindByID(ctx, idUsuario)
}

// FindByEquipo members of one team
func (s *BomberoService) FindByEquipo(ctx context.Context, idEquipo int64) ([]domain.Bombero, error) {
	if _, err := s.equipoRepo.FindByID(ctx, idEquipo); err != nil {
		return nil, err
	}
	return s.repo.FindByEquipo(ctx, idEquipo)
}

func (s *BomberoService) Save(ctx context.Context, b *domain.Bombero) (*domain.Bombero, error) {
	if b == nil {
		return nil, errs.Invalid("bombero is required")
	}
	if err := validation.Struct(b); err != nil {
		return nil, err
	}
	if _, err := s.usuarioRepo.FindByID(ctx, b.IDUsuario); err != nil {
		return nil, requireLocal("id_usuario", b.IDUsuario, err)
	}
	if _, err := s.equipoRepo.FindByID(ctx, b.IDEquipo); err != nil {
		return nil, requireLocal("id_equipo", b.IDEquipo, err)
	}
	return s.repo.Create(ctx, b)
}

func (s *BomberoService) Update(ctx context.Context, idUsuario int64, patch *domain.BomberoPatch) (*domain.Bombero, error) {
	if patch == nil {
		return nil, errs.Invalid("bombero is required")
	}
	current, err := s.repo.FindByID(ctx, idUsuario)
	if err != nil {
		return nil, err
	}
	previousEquipo := current.IDEquipo
	patch.Apply(current)
	if err := validation.Struct(current); err != nil {
		return nil, err
	}
	if current.IDEquipo == previousEquipo {
		return current, nil
	}

	anterior, err := s.equipoRepo.FindByID(ctx, previousEquipo)
	if err != nil {
		return nil, err
	}
	nuevo, err := s.equipoRepo.FindByID(ctx, current.IDEquipo)
	if err != nil {
		return nil, requireLocal("id_equipo", current.IDEquipo, err)
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	h := &domain.HistorialUsuario{
		IDUsuario:      lo.ToPtr(current.IDUsuario),
		IDEquipo:       lo.ToPtr(nuevo.IDEquipo),
		IDCompania:     lo.ToPtr(nuevo.IDCompania),
		EstadoAnterior: anterior.Nombre,
		EstadoNuevo:    nuevo.Nombre,
		Detalle:        "cambio de equipo",
	}
	if _, err := s.historial.Create(ctx, h); err != nil {
		s.logger.Error("failed to record bombero historial", zap.Int64("id_usuario", current.IDUsuario), zap.Error(err))
	}
	return current, nil
}

func (s *BomberoService) Delete(ctx context.Context, idUsuario int64) error {
	if _, err := s.repo.FindByID(ctx, idUsuario); err != nil {
		return err
	}
	return s.repo.Delete(ctx, idUsuario)
}
