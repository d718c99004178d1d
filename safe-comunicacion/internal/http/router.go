package httpapi

import (
	"net/http"

	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-comunicacion/internal/domain"
	"safe-rescue/safe-comunicacion/internal/service"

	"go.uber.org/zap"
)

const basePath = "/api-comunicacion/v1"

// Services everything the comunicacion API serves
type Services struct {
	Conversaciones *service.ConversacionService
	Participantes  *service.ParticipanteService
	Mensajes       *service.MensajeService
	Notificaciones *service.NotificacionService
	Historial      *service.HistorialMensajeService
}

func NewRouter(svc Services, db httpx.Pinger, logger *zap.Logger) *httpx.Router {
	r := httpx.NewRouter("safe-comunicacion", logger)
	r.RegisterHealth(db)

	httpx.NewCRUDHandler[domain.Conversacion, domain.ConversacionPatch]("conversacion", svc.Conversaciones, logger).Register(r, basePath+"/conversaciones")
	httpx.NewCRUDHandler[domain.ParticipanteConversacion, domain.ParticipanteConversacionPatch]("participante_conversacion", svc.Participantes, logger).Register(r, basePath+"/participantes")
	httpx.NewCRUDHandler[domain.Mensaje, domain.MensajePatch]("mensaje", svc.Mensajes, logger).Register(r, basePath+"/mensajes")
	httpx.NewCRUDHandler[domain.Notificacion, domain.NotificacionPatch]("notificacion", svc.Notificaciones, logger).Register(r, basePath+"/notificaciones")

	c := &conversacionHandler{participantes: svc.Participantes, mensajes: svc.Mensajes, logger: logger}
	r.Handle(http.MethodGet, basePath+"/conversaciones/{id:[0-9]+}/participantes", c.participantesOf)
	r.Handle(http.MethodPost, basePath+"/conversaciones/{id:[0-9]+}/participantes", c.join)
	r.Handle(http.MethodGet, basePath+"/conversaciones/{id:[0-9]+}/mensajes", c.mensajesOf)

	n := &notificacionHandler{svc: svc.Notificaciones, logger: logger}
	r.Handle(http.MethodPut, basePath+"/notificaciones/{id:[0-9]+}/leer", n.markRead)
	r.Handle(http.MethodGet, basePath+"/notificaciones/usuario/{idUsuario:[0-9]+}", n.byReceptor)
	r.Handle(http.MethodGet, basePath+"/notificaciones/usuario/{idUsuario:[0-9]+}/no-leidas", n.countUnread)
	r.Handle(http.MethodPut, basePath+"/notificaciones/usuario/{idUsuario:[0-9]+}/leer", n.markAllRead)

	hist := &historialHandler{svc: svc.Historial, logger: logger}
	r.Handle(http.MethodGet, basePath+"/historial-mensajes", hist.findAll)
	r.Handle(http.MethodPost, basePath+"/historial-mensajes", hist.create)
	r.Handle(http.MethodGet, basePath+"/historial-mensajes/{id:[0-9]+}", hist.findByID)
	r.Handle(http.MethodGet, basePath+"/historial-mensajes/mensaje/{id:[0-9]+}", hist.findByMensaje)
	return r
}
