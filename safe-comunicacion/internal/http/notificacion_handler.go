package httpapi

import (
	"net/http"

	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-comunicacion/internal/service"

	"go.uber.org/zap"
)

type notificacionHandler struct {
	svc    *service.NotificacionService
	logger *zap.Logger
}

func (h *notificacionHandler) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "MarkRead notificacion", err)
		return
	}
	n, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "MarkRead notificacion", err)
		return
	}
	httpx.WriteOK(w, n)
}

func (h *notificacionHandler) byReceptor(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "idUsuario")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByReceptor notificacion", err)
		return
	}
	items, err := h.svc.FindByReceptor(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByReceptor notificacion", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *notificacionHandler) countUnread(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "idUsuario")
	if err != nil {
		httpx.WriteError(w, h.logger, "CountUnread notificacion", err)
		return
	}
	res, err := h.svc.CountUnread(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "CountUnread notificacion", err)
		return
	}
	httpx.WriteOK(w, res)
}

func (h *notificacionHandler) markAllRead(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "idUsuario")
	if err != nil {
		httpx.WriteError(w, h.logger, "MarkAllRead notificacion", err)
		return
	}
	res, err := h.svc.MarkAllRead(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "MarkAllRead notificacion", err)
		return
	}
	httpx.WriteOK(w, res)
}
