package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-comunicacion/internal/domain"
	"safe-rescue/safe-comunicacion/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// MensajeService messages. Only participants may post, and estado changes are kept in
// historial_mensaje.
type MensajeService struct {
	repo             repository.MensajeRepository
	conversacionRepo repository.ConversacionRepository
	participanteRepo repository.ParticipanteRepository
	historial        repository.HistorialMensajeRepository
	registros        RegistrosClient
	logger           *zap.Logger
}

func NewMensajeService(
	repo repository.MensajeRepository,
	conversacionRepo repository.ConversacionRepository,
	participanteRepo repository.ParticipanteRepository,
	historial repository.HistorialMensajeRepository,
	registros RegistrosClient,
	logger *zap.Logger,
) *MensajeService {
	return &MensajeService{
		repo:             repo,
		conversacionRepo: conversacionRepo,
		participanteRepo: participanteRepo,
		historial:        historial,
		registros:        registros,
		logger:           logger,
	}
}

func (s *MensajeService) FindAll(ctx context.Context) ([]domain.Mensaje, error) {
	return s.repo.FindAll(ctx)
}

func (s *MensajeService) FindByID(ctx context.Context, id int64) (*domain.Mensaje, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MensajeService) FindByConversacion(ctx context.Context, idConversacion int64) ([]domain.Mensaje, error) {
	if _, err := s.conversacionRepo.FindByID(ctx, idConversacion); err != nil {
		return nil, err
	}
	return s.repo.FindByConversacion(ctx, idConversacion)
}

func (s *MensajeService) Save(ctx context.Context, m *domain.Mensaje) (*domain.Mensaje, error) {
	if m == nil {
		return nil, errs.Invalid("mensaje is required")
	}
	m.IDMensaje = 0
	m.Normalize()
	if err := validation.Struct(m); err != nil {
		return nil, err
	}
	if _, err := s.conversacionRepo.FindByID(ctx, m.IDConversacion); err != nil {
		return nil, requireLocal("id_conversacion", m.IDConversacion, err)
	}
	joined, err := s.participanteRepo.Exists(ctx, m.IDConversacion, m.IDUsuarioEmisor)
	if err != nil {
		return nil, err
	}
	if !joined {
		return nil, errs.Invalid("usuario %d is not a participant of conversacion %d", m.IDUsuarioEmisor, m.IDConversacion)
	}
	if _, err := s.registros.GetEstado(ctx, m.IDEstado); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, m)
}

func (s *MensajeService) Update(ctx context.Context, id int64, patch *domain.MensajePatch) (*domain.Mensaje, error) {
	if patch == nil {
		return nil, errs.Invalid("mensaje is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousEstado := current.IDEstado
	patch.Apply(current)
	current.Normalize()
	if err := validation.Struct(current); err != nil {
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
		h := &domain.HistorialMensaje{
			IDMensaje:        current.IDMensaje,
			IDEstadoAnterior: lo.ToPtr(previousEstado),
			IDEstadoNuevo:    current.IDEstado,
			Detalle:          "cambio de estado del mensaje",
		}
		if _, err := s.historial.Create(ctx, h); err != nil {
			s.logger.Error("failed to record mensaje historial", zap.Int64("id_mensaje", current.IDMensaje), zap.Error(err))
		}
	}
	return current, nil
}

func (s *MensajeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
