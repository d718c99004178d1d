package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-registros/internal/service"

	"go.uber.org/zap"
)

// multipartOverhead room for headers and boundaries on top of the file limit
const multipartOverhead = 64 << 10

// FileOpener read side of the picture store
type FileOpener interface {
	Open(name string) (*os.File, error)
}

type fotoHandler struct {
	svc    *service.FotoService
	files  FileOpener
	limit  int64
	logger *zap.Logger
}

// upload expects multipart/form-data with the picture in field "archivo"
func (h *fotoHandler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.limit+multipartOverhead)
	file, _, err := r.FormFile("archivo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteError(w, h.logger, "UploadFoto", errs.Invalid("archivo exceeds the size limit"))
			return
		}
		httpx.WriteError(w, h.logger, "UploadFoto", errs.Invalid("archivo is required"))
		return
	}
	defer file.Close()

	foto, err := h.svc.Upload(r.Context(), file)
	if err != nil {
		httpx.WriteError(w, h.logger, "UploadFoto", err)
		return
	}
	httpx.WriteCreated(w, foto)
}

func (h *fotoHandler) serve(w http.ResponseWriter, r *http.Request) {
	name := httpx.PathString(r, "nombre")
	f, err := h.files.Open(name)
	if err != nil {
		httpx.WriteError(w, h.logger, "ServeFoto", fmt.Errorf("%w: archivo %s", errs.ErrNotFound, filepath.Base(name)))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		httpx.WriteError(w, h.logger, "ServeFoto", err)
		return
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}
