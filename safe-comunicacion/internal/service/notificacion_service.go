package service

import (
	"context"
	"fmt"
	"time"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/events"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-comunicacion/internal/domain"
	"safe-rescue/safe-comunicacion/internal/repository"

	"go.uber.org/zap"
)

// publishTimeout bound on pushing one notification to the brokers
const publishTimeout = 3 * time.Second

// NotificacionTopic MQTT topic a receptor's devices subscribe to
func NotificacionTopic(idUsuario int64) string {
	return fmt.Sprintf("safe-rescue/notificaciones/%d", idUsuario)
}

// NotificacionService user notifications. New notifications are pushed through the
// publisher; a push failure never fails the request.
type NotificacionService struct {
	repo             repository.NotificacionRepository
	conversacionRepo repository.ConversacionRepository
	perfiles         PerfilesClient
	publisher        events.Publisher
	logger           *zap.Logger
}

func NewNotificacionService(
	repo repository.NotificacionRepository,
	conversacionRepo repository.ConversacionRepository,
	perfiles PerfilesClient,
	publisher events.Publisher,
	logger *zap.Logger,
) *NotificacionService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &NotificacionService{
		repo:             repo,
		conversacionRepo: conversacionRepo,
		perfiles:         perfiles,
		publisher:        publisher,
		logger:           logger,
	}
}

func (s *NotificacionService) FindAll(ctx context.Context) ([]domain.Notificacion, error) {
	return s.repo.FindAll(ctx)
}

func (s *NotificacionService) FindByID(ctx context.Context, id int64) (*domain.Notificacion, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByReceptor notifications of one user, newest first
func (s *NotificacionService) FindByReceptor(ctx context.Context, idUsuario int64) ([]domain.Notificacion, error) {
	if err := validation.RequireID("id_usuario", idUsuario); err != nil {
		return nil, err
	}
	return s.repo.FindByReceptor(ctx, idUsuario)
}

func (s *NotificacionService) CountUnread(ctx context.Context, idUsuario int64) (*domain.NoLeidas, error) {
	if err := validation.RequireID("id_usuario", idUsuario); err != nil {
		return nil, err
	}
	n, err := s.repo.CountUnread(ctx, idUsuario)
	if err != nil {
		return nil, err
	}
	return &domain.NoLeidas{IDUsuario: idUsuario, Total: n}, nil
}

func (s *NotificacionService) Save(ctx context.Context, n *domain.Notificacion) (*domain.Notificacion, error) {
	if n == nil {
		return nil, errs.Invalid("notificacion is required")
	}
	n.IDNotificacion = 0
	n.Leida = false
	if err := s.validate(ctx, n); err != nil {
		return nil, err
	}
	if _, err := s.perfiles.GetUsuario(ctx, n.IDUsuarioReceptor); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, created)
	return created, nil
}

func (s *NotificacionService) Update(ctx context.Context, id int64, patch *domain.NotificacionPatch) (*domain.Notificacion, error) {
	if patch == nil {
		return nil, errs.Invalid("notificacion is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(current)
	if err := s.validate(ctx, current); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// MarkRead flags one notification as read; already read ones are left as they are
func (s *NotificacionService) MarkRead(ctx context.Context, id int64) (*domain.Notificacion, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Leida {
		return current, nil
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	current.Leida = true
	return current, nil
}

// MarkAllRead flags every unread notification of idUsuario and reports how many changed
func (s *NotificacionService) MarkAllRead(ctx context.Context, idUsuario int64) (*domain.Marcadas, error) {
	if err := validation.RequireID("id_usuario", idUsuario); err != nil {
		return nil, err
	}
	n, err := s.repo.MarkAllRead(ctx, idUsuario)
	if err != nil {
		return nil, err
	}
	s.logger.Info("notificaciones marked as read", zap.Int64("id_usuario", idUsuario), zap.Int64("count", n))
	return &domain.Marcadas{IDUsuario: idUsuario, Actualizadas: n}, nil
}

func (s *NotificacionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *NotificacionService) validate(ctx context.Context, n *domain.Notificacion) error {
	n.Normalize()
	if err := validation.Struct(n); err != nil {
		return err
	}
	if n.IDConversacion != nil {
		if _, err := s.conversacionRepo.FindByID(ctx, *n.IDConversacion); err != nil {
			return requireLocal("id_conversacion", *n.IDConversacion, err)
		}
	}
	return nil
}

func (s *NotificacionService) publish(ctx context.Context, n *domain.Notificacion) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	ev := events.Event{Topic: NotificacionTopic(n.IDUsuarioReceptor), Payload: n}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn("failed to publish notificacion",
			zap.Int64("id_notificacion", n.IDNotificacion), zap.String("topic", ev.Topic), zap.Error(err))
	}
}
