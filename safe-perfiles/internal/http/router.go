package httpapi

import (
	"net/http"

	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-perfiles/internal/domain"
	"safe-rescue/safe-perfiles/internal/service"

	"go.uber.org/zap"
)

const basePath = "/api-perfiles/v1"

// Services everything the perfiles API serves
type Services struct {
	TiposUsuario *service.TipoUsuarioService
	Companias    *service.CompaniaService
	Equipos      *service.EquipoService
	Usuarios     *service.UsuarioService
	Ciudadanos   *service.CiudadanoService
	Bomberos     *service.BomberoService
	Historial    *service.HistorialUsuarioService
	// UploadLimit max size of a profile picture forwarded to Registros
	UploadLimit int64
}

func NewRouter(svc Services, db httpx.Pinger, logger *zap.Logger) *httpx.Router {
	r := httpx.NewRouter("safe-perfiles", logger)
	r.RegisterHealth(db)

	httpx.NewCRUDHandler[domain.TipoUsuario, domain.TipoUsuarioPatch]("tipo_usuario", svc.TiposUsuario, logger).Register(r, basePath+"/tipos-usuario")
	httpx.NewCRUDHandler[domain.Compania, domain.CompaniaPatch]("compania", svc.Companias, logger).Register(r, basePath+"/companias")
	httpx.NewCRUDHandler[domain.Equipo, domain.EquipoPatch]("equipo", svc.Equipos, logger).Register(r, basePath+"/equipos")
	httpx.NewCRUDHandler[domain.Usuario, domain.UsuarioPatch]("usuario", svc.Usuarios, logger).Register(r, basePath+"/usuarios")
	httpx.NewCRUDHandler[domain.Ciudadano, domain.CiudadanoPatch]("ciudadano", svc.Ciudadanos, logger).Register(r, basePath+"/ciudadanos")
	httpx.NewCRUDHandler[domain.Bombero, domain.BomberoPatch]("bombero", svc.Bomberos, logger).Register(r, basePath+"/bomberos")

	p := &perfilesHandler{svc: svc, logger: logger}
	r.Handle(http.MethodGet, basePath+"/companias/{id:[0-9]+}/equipos", p.equiposByCompania)
	r.Handle(http.MethodGet, basePath+"/equipos/{id:[0-9]+}/bomberos", p.bomberosByEquipo)
	r.Handle(http.MethodPost, basePath+"/usuarios/{id:[0-9]+}/foto", p.uploadFoto)
	r.Handle(http.MethodPost, basePath+"/ciudadanos/registro", p.registro)

	hist := &historialHandler{svc: svc.Historial, logger: logger}
	r.Handle(http.MethodGet, basePath+"/historial-usuarios", hist.findAll)
	r.Handle(http.MethodPost, basePath+"/historial-usuarios", hist.create)
	r.Handle(http.MethodGet, basePath+"/historial-usuarios/{id:[0-9]+}", hist.findByID)
	r.Handle(http.MethodGet, basePath+"/historial-usuarios/usuario/{id:[0-9]+}", hist.findByUsuario)
	return r
}
