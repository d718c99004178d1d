package httpapi

import (
	"net/http"

	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-comunicacion/internal/domain"
	"safe-rescue/safe-comunicacion/internal/service"

	"go.uber.org/zap"
)

// historialHandler read and append only
type historialHandler struct {
	svc    *service.HistorialMensajeService
	logger *zap.Logger
}

func (h *historialHandler) findAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.FindAll(r.Context())
	if err != nil {
		httpx.WriteError(w, h.logger, "FindAll historial_mensaje", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *historialHandler) findByID(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByID historial_mensaje", err)
		return
	}
	item, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByID historial_mensaje", err)
		return
	}
	httpx.WriteOK(w, item)
}

func (h *historialHandler) findByMensaje(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByMensaje historial_mensaje", err)
		return
	}
	items, err := h.svc.FindByMensaje(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByMensaje historial_mensaje", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *historialHandler) create(w http.ResponseWriter, r *http.Request) {
	var body *domain.HistorialMensaje
	if err := httpx.ReadJSON(r, &body); err != nil {
		httpx.WriteError(w, h.logger, "Create historial_mensaje", err)
		return
	}
	created, err := h.svc.Save(r.Context(), body)
	if err != nil {
		httpx.WriteError(w, h.logger, "Create historial_mensaje", err)
		return
	}
	httpx.WriteCreated(w, created)
}
