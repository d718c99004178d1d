package httpapi

import (
	"net/http"

	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-incidentes/internal/domain"
	"safe-rescue/safe-incidentes/internal/service"

	"go.uber.org/zap"
)

const basePath = "/api-incidentes/v1"

// Services everything the incidentes API serves
type Services struct {
	TiposIncidente *service.TipoIncidenteService
	Incidentes     *service.IncidenteService
	// UploadLimit max size of an incident picture forwarded to Registros
	UploadLimit int64
}

func NewRouter(svc Services, db httpx.Pinger, logger *zap.Logger) *httpx.Router {
	r := httpx.NewRouter("safe-incidentes", logger)
	r.RegisterHealth(db)

	httpx.NewCRUDHandler[domain.TipoIncidente, domain.TipoIncidentePatch]("tipo_incidente", svc.TiposIncidente, logger).Register(r, basePath+"/tipos-incidente")
	httpx.NewCRUDHandler[domain.Incidente, domain.IncidentePatch]("incidente", svc.Incidentes, logger).Register(r, basePath+"/incidentes")

	h := &incidenteHandler{svc: svc.Incidentes, uploadLimit: svc.UploadLimit, logger: logger}
	r.Handle(http.MethodGet, basePath+"/incidentes/exportar", h.exportar)
	r.Handle(http.MethodPost, basePath+"/incidentes/registro", h.registro)
	r.Handle(http.MethodGet, basePath+"/incidentes/ciudadano/{id:[0-9]+}", h.byCiudadano)
	r.Handle(http.MethodPut, basePath+"/incidentes/{id:[0-9]+}/asignar/{idUsuario:[0-9]+}", h.asignar)
	r.Handle(http.MethodPost, basePath+"/incidentes/{id:[0-9]+}/foto", h.uploadFoto)
	return r
}
