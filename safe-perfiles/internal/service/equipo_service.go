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

// EquipoService teams; an estado change is recorded in historial_usuario
type EquipoService struct {
	repo         repository.EquipoRepository
	companiaRepo repository.CompaniaRepository
	usuarioRepo  repository.UsuarioRepository
	historial    repository.HistorialUsuarioRepository
	registros    RegistrosClient
	logger       *zap.Logger
}

func NewEquipoService(
	repo repository.EquipoRepository,
	companiaRepo repository.CompaniaRepository,
	usuarioRepo repository.UsuarioRepository,
	historial repository.HistorialUsuarioRepository,
	registros RegistrosClient,
	logger *zap.Logger,
) *EquipoService {
	return &EquipoService{
		repo:         repo,
		companiaRepo: companiaRepo,
		usuarioRepo:  usuarioRepo,
		historial:    historial,
		registros:    registros,
		logger:       logger,
	}
}

func (s *EquipoService) FindAll(ctx context.Context) ([]domain.Equipo, error) {
	return s.repo.FindAll(ctx)
}

func (s *EquipoService) FindByID(ctx context.Context, id int64) (*domain.Equipo, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByCompania teams of one company
func (s *EquipoService) FindByCompania(ctx context.Context, idCompania int64) ([]domain.Equipo, error) {
	if _, err := s.companiaRepo.FindByID(ctx, idCompania); err != nil {
		return nil, err
	}
	return s.repo.FindByCompania(ctx, idCompania)
}

func (s *EquipoService) Save(ctx context.Context, e *domain.Equipo) (*domain.Equipo, error) {
	if e == nil {
		return nil, errs.Invalid("equipo is required")
	}
	e.IDEquipo = 0
	if err := s.validate(ctx, e); err != nil {
		return nil, err
	}
	if _, err := s.registros.GetEstado(ctx, e.IDEstado); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, e)
}

func (s *EquipoService) Update(ctx context.Context, id int64, patch *domain.EquipoPatch) (*domain.Equipo, error) {
	if patch == nil {
		return nil, errs.Invalid("equipo is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousEstado := current.IDEstado
	patch.Apply(current)
	if err := s.validate(ctx, current); err != nil {
		return nil, err
	}
	estadoChanged := current.IDEstado != previousEstado
	if estadoChanged {
		if _, err := s.registros.GetEstado(ctx, current.IDEstado); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	if estadoChanged {
		s.recordEstado(ctx, current, previousEstado)
	}
	return current, nil
}

func (s *EquipoService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *EquipoService) validate(ctx context.Context, e *domain.Equipo) error {
	e.Normalize()
	if err := validation.Struct(e); err != nil {
		return err
	}
	if _, err := s.companiaRepo.FindByID(ctx, e.IDCompania); err != nil {
		return requireLocal("id_compania", e.IDCompania, err)
	}
	if e.IDLider != nil {
		if _, err := s.usuarioRepo.FindByID(ctx, *e.IDLider); err != nil {
			return requireLocal("id_lider", *e.IDLider, err)
		}
	}
	return nil
}

// recordEstado the update already happened, so a failed audit write is only logged
func (s *EquipoService) recordEstado(ctx context.Context, e *domain.Equipo, previous int64) {
	h := &domain.HistorialUsuario{
		IDEquipo:       lo.ToPtr(e.IDEquipo),
		IDCompania:     lo.ToPtr(e.IDCompania),
		EstadoAnterior: estadoNombre(ctx, s.registros, previous, s.logger),
		EstadoNuevo:    estadoNombre(ctx, s.registros, e.IDEstado, s.logger),
		Detalle:        "cambio de estado del equipo",
	}
	if _, err := s.historial.Create(ctx, h); err != nil {
		s.logger.Error("failed to record equipo historial", zap.Int64("id_equipo", e.IDEquipo), zap.Error(err))
	}
}
