package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-comunicacion/internal/domain"
	"safe-rescue/safe-comunicacion/internal/repository"

	"go.uber.org/zap"
)

type HistorialMensajeService struct {
	repo        repository.HistorialMensajeRepository
	mensajeRepo repository.MensajeRepository
	logger      *zap.Logger
}

func NewHistorialMensajeService(repo repository.HistorialMensajeRepository, mensajeRepo repository.MensajeRepository, logger *zap.Logger) *HistorialMensajeService {
	return &HistorialMensajeService{repo: repo, mensajeRepo: mensajeRepo, logger: logger}
}

func (s *HistorialMensajeService) FindAll(ctx context.Context) ([]domain.HistorialMensaje, error) {
	return s.repo.FindAll(ctx)
}

func (s *HistorialMensajeService) FindByID(ctx context.Context, id int64) (*domain.HistorialMensaje, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByMensaje trail of one message, oldest first
func (s *HistorialMensajeService) FindByMensaje(ctx context.Context, idMensaje int64) ([]domain.HistorialMensaje, error) {
	if _, err := s.mensajeRepo.FindByID(ctx, idMensaje); err != nil {
		return nil, err
	}
	return s.repo.FindByMensaje(ctx, idMensaje)
}

func (s *HistorialMensajeService) Save(ctx context.Context, h *domain.HistorialMensaje) (*domain.HistorialMensaje, error) {
	if h == nil {
		return nil, errs.Invalid("historial is required")
	}
	h.IDHistorial = 0
	h.Normalize()
	if err := validation.Struct(h); err != nil {
		return nil, err
	}
	if _, err := s.mensajeRepo.FindByID(ctx, h.IDMensaje); err != nil {
		return nil, requireLocal("id_mensaje", h.IDMensaje, err)
	}
	return s.repo.Create(ctx, h)
}
