package httpapi

import (
	"net/http"

	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-registros/internal/domain"
	"safe-rescue/safe-registros/internal/service"

	"go.uber.org/zap"
)

const basePath = "/api-registros/v1"

// FilesPath prefix under which uploaded pictures are served
const FilesPath = basePath + "/fotos/archivos"

// Services everything the registros API serves
type Services struct {
	Estados     *service.EstadoService
	Categorias  *service.CategoriaService
	Fotos       *service.FotoService
	Historial   *service.HistorialService
	Files       FileOpener
	UploadLimit int64
}

func NewRouter(svc Services, db httpx.Pinger, logger *zap.Logger) *httpx.Router {
	r := httpx.NewRouter("safe-registros", logger)
	r.RegisterHealth(db)

	httpx.NewCRUDHandler[domain.Estado, domain.EstadoPatch]("estado", svc.Estados, logger).Register(r, basePath+"/estados")
	httpx.NewCRUDHandler[domain.Categoria, domain.CategoriaPatch]("categoria", svc.Categorias, logger).Register(r, basePath+"/categorias")
	httpx.NewCRUDHandler[domain.Foto, domain.FotoPatch]("foto", svc.Fotos, logger).Register(r, basePath+"/fotos")

	fotos := &fotoHandler{svc: svc.Fotos, files: svc.Files, limit: svc.UploadLimit, logger: logger}
	r.Handle(http.MethodPost, basePath+"/fotos/upload", fotos.upload)
	r.Handle(http.MethodGet, FilesPath+"/{nombre}", fotos.serve)

	hist := &historialHandler{svc: svc.Historial, logger: logger}
	r.Handle(http.MethodGet, basePath+"/historial", hist.findAll)
	r.Handle(http.MethodPost, basePath+"/historial", hist.create)
	r.Handle(http.MethodGet, basePath+"/historial/{id:[0-9]+}", hist.findByID)
	r.Handle(http.MethodGet, basePath+"/historial/entidad/{entidad}/{idEntidad:[0-9]+}", hist.findByEntidad)
	return r
}
