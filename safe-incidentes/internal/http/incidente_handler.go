package httpapi

import (
	"errors"
	"net/http"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-incidentes/internal/domain"
	"safe-rescue/safe-incidentes/internal/service"

	"go.uber.org/zap"
)

// multipartOverhead room for headers and boundaries on top of the file limit
const multipartOverhead = 64 << 10

type incidenteHandler struct {
	svc         *service.IncidenteService
	uploadLimit int64
	logger      *zap.Logger
}

func (h *incidenteHandler) byCiudadano(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByCiudadano incidente", err)
		return
	}
	items, err := h.svc.FindByCiudadano(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByCiudadano incidente", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *incidenteHandler) asignar(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "Assign incidente", err)
		return
	}
	idUsuario, err := httpx.PathID(r, "idUsuario")
	if err != nil {
		httpx.WriteError(w, h.logger, "Assign incidente", err)
		return
	}
	inc, err := h.svc.Assign(r.Context(), id, idUsuario)
	if err != nil {
		httpx.WriteError(w, h.logger, "Assign incidente", err)
		return
	}
	httpx.WriteOK(w, inc)
}

// uploadFoto expects multipart/form-data with the picture in field "archivo"
func (h *incidenteHandler) uploadFoto(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "UploadFoto incidente", err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadLimit+multipartOverhead)
	file, header, err := r.FormFile("archivo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteError(w, h.logger, "UploadFoto incidente", errs.Invalid("archivo exceeds the size limit"))
			return
		}
		httpx.WriteError(w, h.logger, "UploadFoto incidente", errs.Invalid("archivo is required"))
		return
	}
	defer file.Close()

	inc, err := h.svc.UploadFoto(r.Context(), id, header.Filename, file)
	if err != nil {
		httpx.WriteError(w, h.logger, "UploadFoto incidente", err)
		return
	}
	httpx.WriteOK(w, inc)
}

func (h *incidenteHandler) registro(w http.ResponseWriter, r *http.Request) {
	var body *domain.IncidenteRegistro
	if err := httpx.ReadJSON(r, &body); err != nil {
		httpx.WriteError(w, h.logger, "Registro incidente", err)
		return
	}
	inc, err := h.svc.Registro(r.Context(), body)
	if err != nil {
		httpx.WriteError(w, h.logger, "Registro incidente", err)
		return
	}
	httpx.WriteCreated(w, inc)
}

func (h *incidenteHandler) exportar(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Export(r.Context())
	if err != nil {
		httpx.WriteError(w, h.logger, "Export incidente", err)
		return
	}
	data, err := GenerateIncidenteExport(rows)
	if err != nil {
		httpx.WriteError(w, h.logger, "Export incidente", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=incidentes.xlsx")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("failed to write export", zap.Error(err))
	}
}
