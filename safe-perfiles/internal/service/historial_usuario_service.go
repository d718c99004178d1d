package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-perfiles/internal/domain"
	"safe-rescue/safe-perfiles/internal/repository"

	"go.uber.org/zap"
)

// HistorialUsuarioService read access to the audit trail plus manual entries
type HistorialUsuarioService struct {
	repo         repository.HistorialUsuarioRepository
	usuarioRepo  repository.UsuarioRepository
	equipoRepo   repository.EquipoRepository
	companiaRepo repository.CompaniaRepository
	logger       *zap.Logger
}

func NewHistorialUsuarioService(
	repo repository.HistorialUsuarioRepository,
	usuarioRepo repository.UsuarioRepository,
	equipoRepo repository.EquipoRepository,
	companiaRepo repository.CompaniaRepository,
	logger *zap.Logger,
) *HistorialUsuarioService {
	return &HistorialUsuarioService{
		repo:         repo,
		usuarioRepo:  usuarioRepo,
		equipoRepo:   equipoRepo,
		companiaRepo: companiaRepo,
		logger:       logger,
	}
}

func (s *HistorialUsuarioService) FindAll(ctx context.Context) ([]domain.HistorialUsuario, error) {
	return s.repo.FindAll(ctx)
}

func (s *HistorialUsuarioService) FindByID(ctx context.Context, id int64) (*domain.HistorialUsuario, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HistorialUsuarioService) FindByUsuario(ctx context.Context, idUsuario int64) ([]domain.HistorialUsuario, error) {
	if _, err := s.usuarioRepo.FindByID(ctx, idUsuario); err != nil {
		return nil, err
	}
	return s.repo.FindByUsuario(ctx, idUsuario)
}

// Save appends a manual entry; at least one of usuario, equipo or compania must be referenced
func (s *HistorialUsuarioService) Save(ctx context.Context, h *domain.HistorialUsuario) (*domain.HistorialUsuario, error) {
	if h == nil {
		return nil, errs.Invalid("historial is required")
	}
	h.IDHistorial = 0
	h.Normalize()
	if err := validation.Struct(h); err != nil {
		return nil, err
	}
	if h.IDUsuario == nil && h.IDEquipo == nil && h.IDCompania == nil {
		return nil, errs.Invalid("id_usuario, id_equipo or id_compania is required")
	}
	if h.IDUsuario != nil {
		if _, err := s.usuarioRepo.FindByID(ctx, *h.IDUsuario); err != nil {
			return nil, requireLocal("id_usuario", *h.IDUsuario, err)
		}
	}
	if h.IDEquipo != nil {
		if _, err := s.equipoRepo.FindByID(ctx, *h.IDEquipo); err != nil {
			return nil, requireLocal("id_equipo", *h.IDEquipo, err)
		}
	}
	if h.IDCompania != nil {
		if _, err := s.companiaRepo.FindByID(ctx, *h.IDCompania); err != nil {
			return nil, requireLocal("id_compania", *h.IDCompania, err)
		}
	}
	return s.repo.Create(ctx, h)
}
