package httpapi

import (
	"errors"
	"net/http"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-perfiles/internal/domain"

	"go.uber.org/zap"
)

// multipartOverhead room for headers and boundaries on top of the file limit
const multipartOverhead = 64 << 10

type perfilesHandler struct {
	svc    Services
	logger *zap.Logger
}

func (h *perfilesHandler) equiposByCompania(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByCompania equipo", err)
		return
	}
	items, err := h.svc.Equipos.FindByCompania(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByCompania equipo", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *perfilesHandler) bomberosByEquipo(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByEquipo bombero", err)
		return
	}
	items, err := h.svc.Bomberos.FindByEquipo(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "FindByEquipo bombero", err)
		return
	}
	httpx.WriteList(w, items)
}

// uploadFoto expects multipart/form-data with the picture in field "archivo"
func (h *perfilesHandler) uploadFoto(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "UploadFoto usuario", err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.svc.UploadLimit+multipartOverhead)
	file, header, err := r.FormFile("archivo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteError(w, h.logger, "UploadFoto usuario", errs.Invalid("archivo exceeds the size limit"))
			return
		}
		httpx.WriteError(w, h.logger, "UploadFoto usuario", errs.Invalid("archivo is required"))
		return
	}
	defer file.Close()

	u, err := h.svc.Usuarios.UploadFoto(r.Context(), id, header.Filename, file)
	if err != nil {
		httpx.WriteError(w, h.logger, "UploadFoto usuario", err)
		return
	}
	httpx.WriteOK(w, u)
}

func (h *perfilesHandler) registro(w http.ResponseWriter, r *http.Request) {
	var body *domain.CiudadanoRegistro
	if err := httpx.ReadJSON(r, &body); err != nil {
		httpx.WriteError(w, h.logger, "Registro ciudadano", err)
		return
	}
	perfil, err := h.svc.Ciudadanos.Registro(r.Context(), body)
	if err != nil {
		httpx.WriteError(w, h.logger, "Registro ciudadano", err)
		return
	}
	httpx.WriteCreated(w, perfil)
}
