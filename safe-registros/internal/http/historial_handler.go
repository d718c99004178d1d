package httpapi

import (
	"net/http"

	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-registros/internal/domain"
	"safe-rescue/safe-registros/internal/service"

	"go.uber.org/zap"
)

// historialHandler read and append only; there is no update or delete route
type historialHandler struct {
	svc    *service.HistorialService
	logger *zap.Logger
}

func (h *historialHandler) findAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.FindAll(r.Context())
	if err != nil {
		httpx.WriteError(w, h.logger, "FindAll historial", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *historialHandler) findByID(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByID historial", err)
		return
	}
	item, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByID historial", err)
		return
	}
	httpx.WriteOK(w, item)
}

func (h *historialHandler) findByEntidad(w http.ResponseWriter, r *http.Request) {
	idEntidad, err := httpx.PathID(r, "idEntidad")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByEntidad historial", err)
		return
	}
	items, err := h.svc.FindByEntidad(r.Context(), httpx.PathString(r, "entidad"), idEntidad)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByEntidad historial", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *historialHandler) create(w http.ResponseWriter, r *http.Request) {
	var body *domain.Historial
	if err := httpx.ReadJSON(r, &body); err != nil {
		httpx.WriteError(w, h.logger, "Create historial", err)
		return
	}
	created, err := h.svc.Save(r.Context(), body)
	if err != nil {
		httpx.WriteError(w, h.logger, "Create historial", err)
		return
	}
	httpx.WriteCreated(w, created)
}
