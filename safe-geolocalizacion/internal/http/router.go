package httpapi

import (
	"net/http"

	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-geolocalizacion/internal/domain"
	"safe-rescue/safe-geolocalizacion/internal/service"

	"go.uber.org/zap"
)

const basePath = "/api-geolocalizacion/v1"

// Services everything the geolocation API serves
type Services struct {
	Paises      *service.PaisService
	Regiones    *service.RegionService
	Comunas     *service.ComunaService
	Coordenadas *service.CoordenadasService
	Direcciones *service.DireccionService
}

// NewRouter mounts the CRUD endpoints plus the lookup endpoints
func NewRouter(svc Services, db httpx.Pinger, logger *zap.Logger) *httpx.Router {
	r := httpx.NewRouter("safe-geolocalizacion", logger)
	r.RegisterHealth(db)

	httpx.NewCRUDHandler[domain.Pais, domain.PaisPatch]("pais", svc.Paises, logger).Register(r, basePath+"/paises")
	httpx.NewCRUDHandler[domain.Region, domain.RegionPatch]("region", svc.Regiones, logger).Register(r, basePath+"/regiones")
	httpx.NewCRUDHandler[domain.Comuna, domain.ComunaPatch]("comuna", svc.Comunas, logger).Register(r, basePath+"/comunas")
	httpx.NewCRUDHandler[domain.Coordenadas, domain.CoordenadasPatch]("coordenadas", svc.Coordenadas, logger).Register(r, basePath+"/coordenadas")
	httpx.NewCRUDHandler[domain.Direccion, domain.DireccionPatch]("direccion", svc.Direcciones, logger).Register(r, basePath+"/direcciones")

	h := &lookupHandler{svc: svc, logger: logger}
	r.Handle(http.MethodGet, basePath+"/paises/{id:[0-9]+}/regiones", h.regionesByPais)
	r.Handle(http.MethodGet, basePath+"/regiones/{id:[0-9]+}/comunas", h.comunasByRegion)
	r.Handle(http.MethodGet, basePath+"/direcciones/{id:[0-9]+}/detalle", h.direccionDetalle)
	return r
}

type lookupHandler struct {
	svc    Services
	logger *zap.Logger
}

func (h *lookupHandler) regionesByPais(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "regionesByPais", err)
		return
	}
	items, err := h.svc.Regiones.FindByPais(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "regionesByPais", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *lookupHandler) comunasByRegion(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "comunasByRegion", err)
		return
	}
	items, err := h.svc.Comunas.FindByRegion(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "comunasByRegion", err)
		return
	}
	httpx.WriteList(w, items)
}

func (h *lookupHandler) direccionDetalle(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.WriteError(w, h.logger, "direccionDetalle", err)
		return
	}
	det, err := h.svc.Direcciones.FindDetalle(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.logger, "direccionDetalle", err)
		return
	}
	httpx.WriteOK(w, det)
}
