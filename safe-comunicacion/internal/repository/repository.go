package repository

import (
	"context"

	"safe-rescue/safe-comunicacion/internal/domain"
)

// ConversacionRepository conversation persistence
type ConversacionRepository interface {
	FindAll(ctx context.Context) ([]domain.Conversacion, error)
	FindByID(ctx context.Context, id int64) (*domain.Conversacion, error)
	Create(ctx context.Context, c *domain.Conversacion) (*domain.Conversacion, error)
	Update(ctx context.Context, c *domain.Conversacion) error
	Delete(ctx context.Context, id int64) error
}

// ParticipanteRepository conversation membership persistence
type ParticipanteRepository interface {
	FindAll(ctx context.Context) ([]domain.ParticipanteConversacion, error)
	FindByID(ctx context.Context, id int64) (*domain.ParticipanteConversacion, error)
	FindByConversacion(ctx context.Context, idConversacion int64) ([]domain.ParticipanteConversacion, error)
	Exists(ctx context.Context, idConversacion, idUsuario int64) (bool, error)
	Create(ctx context.Context, p *domain.ParticipanteConversacion) (*domain.ParticipanteConversacion, error)
	Update(ctx context.Context, p *domain.ParticipanteConversacion) error
	Delete(ctx context.Context, id int64) error
}

// MensajeRepository message persistence
type MensajeRepository interface {
	FindAll(ctx context.Context) ([]domain.Mensaje, error)
	FindByID(ctx context.Context, id int64) (*domain.Mensaje, error)
	FindByConversacion(ctx context.Context, idConversacion int64) ([]domain.Mensaje, error)
	Create(ctx context.Context, m *domain.Mensaje) (*domain.Mensaje, error)
	Update(ctx context.Context, m *domain.Mensaje) error
	Delete(ctx context.Context, id int64) error
}

// NotificacionRepository notification persistence
type NotificacionRepository interface {
	FindAll(ctx context.Context) ([]domain.Notificacion, error)
	FindByID(ctx context.Context, id int64) (*domain.Notificacion, error)
	// FindByReceptor newest first
	FindByReceptor(ctx context.Context, idUsuario int64) ([]domain.Notificacion, error)
	CountUnread(ctx context.Context, idUsuario int64) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	// MarkAllRead flags every unread notification of the receptor and returns how many changed
	MarkAllRead(ctx context.Context, idUsuario int64) (int64, error)
	Create(ctx context.Context, n *domain.Notificacion) (*domain.Notificacion, error)
	Update(ctx context.Context, n *domain.Notificacion) error
	Delete(ctx context.Context, id int64) error
}

// HistorialMensajeRepository message audit trail; rows are never updated or deleted
type HistorialMensajeRepository interface {
	FindAll(ctx context.Context) ([]domain.HistorialMensaje, error)
	FindByID(ctx context.Context, id int64) (*domain.HistorialMensaje, error)
	FindByMensaje(ctx context.Context, idMensaje int64) ([]domain.HistorialMensaje, error)
	Create(ctx context.Context, h *domain.HistorialMensaje) (*domain.HistorialMensaje, error)
}
