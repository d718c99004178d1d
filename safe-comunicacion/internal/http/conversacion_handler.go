package httpapi

import (
	"net/http"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-comunicacion/internal/service"

	"go.uber.org/zap"
)

type conversacionHandler struct {
	participantes *service.ParticipanteService
	mensajes      *service.MensajeService
	logger        *zap.Logger
}

// joinRequest body of POST /conversaciones/{id}/participantes
type joinRequest struct {
	IDUsuario int64 `json:"id_usuario"`
}

func (h *conversacionHandler) join(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "Join conversacion", err)
		return
	}
	var body *joinRequest
	if err := httpx.ReadJSON(r, &body); err != nil {
		httpx.WriteError(w, h.logger, "Join conversacion", err)
		return
	}
	if body == nil {
		httpx.WriteError(w, h.logger, "Join conversacion", errs.Invalid("id_usuario is required"))
		return
	}
	p, err := h.participantes.Join(r.Context(), id, body.IDUsuario)
	if err != nil {
		httpx.WriteError(w, h.logger, "Join conversacion", err)
		return
	}
	httpx.WriteCreated(w, p)
}

func (h *conversacionHandler) participantesOf(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByConversacion participante", err)
		return
	}
	items, err := h.participantes.FindByConversacion(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByConversacion participante", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *conversacionHandler) mensajesOf(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByConversacion mensaje", err)
		return
	}
	items, err := h.mensajes.FindByConversacion(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByConversacion mensaje", err)
		return
	}
	httpx.WriteList(w, items)
}
