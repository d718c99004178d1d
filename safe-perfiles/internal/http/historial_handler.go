package httpapi

import (
	"net/http"

	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-perfiles/internal/domain"
	"safe-rescue/safe-perfiles/internal/service"

	"go.uber.org/zap"
)

// historialHandler read and append only
type historialHandler struct {
	svc    *service.HistorialUsuarioService
	logger *zap.Logger
}

func (h *historialHandler) findAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.FindAll(r.Context())
	if err != nil {
		httpx.WriteError(w, h.logger, "FindAll historial_usuario", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *historialHandler) findByID(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByID historial_usuario", err)
		return
	}
	item, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByID historial_usuario", err)
		return
	}
	httpx.WriteOK(w, item)
}

func (h *historialHandler) findByUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByUsuario historial_usuario", err)
		return
	}
	items, err := h.svc.FindByUsuario(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByUsuario historial_usuario", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *historialHandler) create(w http.ResponseWriter, r *http.Request) {
	var body *domain.HistorialUsuario
	if err := httpx.ReadJSON(r, &body); err != nil {
		httpx.WriteError(w, h.logger, "Create historial_usuario", err)
		return
	}
	created, err := h.svc.Save(r.Context(), body)
	if err != nil {
		httpx.WriteError(w, h.logger, "Create historial_usuario", err)
		return
	}
	httpx.WriteCreated(w, created)
}
