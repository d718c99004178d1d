package service

import (
	"context"
	"errors"
	"strings"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-registros/internal/domain"
	"safe-rescue/safe-registros/internal/repository"

	"go.uber.org/zap"
)

// HistorialService append-only audit trail. Other services post here whenever a tracked
// estado changes.
type HistorialService struct {
	repo       repository.HistorialRepository
	estadoRepo repository.EstadoRepository
	logger     *zap.Logger
}

func NewHistorialService(repo repository.HistorialRepository, estadoRepo repository.EstadoRepository, logger *zap.Logger) *HistorialService {
	return &HistorialService{repo: repo, estadoRepo: estadoRepo, logger: logger}
}

func (s *HistorialService) FindAll(ctx context.Context) ([]domain.Historial, error) {
	return s.repo.FindAll(ctx)
}

func (s *HistorialService) FindByID(ctx context.Context, id int64) (*domain.Historial, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByEntidad trail of one row, oldest first
func (s *HistorialService) FindByEntidad(ctx context.Context, entidad string, idEntidad int64) ([]domain.Historial, error) {
	entidad = strings.ToLower(strings.TrimSpace(entidad))
	if entidad == "" {
		return nil, errs.Invalid("entidad is required")
	}
	if err := validation.RequireID("id_entidad", idEntidad); err != nil {
		return nil, err
	}
	return s.repo.FindByEntidad(ctx, entidad, idEntidad)
}

// Save appends a row; id and fecha_historial are always assigned server side
func (s *HistorialService) Save(ctx context.Context, h *domain.Historial) (*domain.Historial, error) {
	if h == nil {
		return nil, errs.Invalid("historial is required")
	}
	h.IDHistorial = 0
	h.Normalize()
	if err := validation.Struct(h); err != nil {
		return nil, err
	}
	if err := s.requireEstado(ctx, "id_estado_nuevo", h.IDEstadoNuevo); err != nil {
		return nil, err
	}
	if h.IDEstadoAnterior != nil {
		if err := s.requireEstado(ctx, "id_estado_anterior", *h.IDEstadoAnterior); err != nil {
			return nil, err
		}
	}
	created, err := s.repo.Create(ctx, h)
	if err != nil {
		return nil, err
	}
	s.logger.Info("historial appended",
		zap.String("entidad", created.Entidad),
		zap.Int64("id_entidad", created.IDEntidad),
		zap.Int64("id_estado_nuevo", created.IDEstadoNuevo),
	)
	return created, nil
}

func (s *HistorialService) requireEstado(ctx context.Context, field string, id int64) error {
	_, err := s.estadoRepo.FindByID(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return errs.Invalid("%s %d does not exist", field, id)
	}
	return err
}
