package service

import (
	"context"
	"io"

	"safe-rescue/safe-common/client"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-incidentes/internal/domain"
	"safe-rescue/safe-incidentes/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// HistorialEntidad entidad name under which incident estado changes are audited in Registros
const HistorialEntidad = "incidente"

// IncidenteService incidents. References to other services are checked through their
// clients before any write, and estado changes are audited in Registros.
type IncidenteService struct {
	repo      repository.IncidenteRepository
	tipoRepo  repository.TipoIncidenteRepository
	perfiles  PerfilesClient
	registros RegistrosClient
	geo       GeolocalizacionClient
	logger    *zap.Logger
}

func NewIncidenteService(
	repo repository.IncidenteRepository,
	tipoRepo repository.TipoIncidenteRepository,
	perfiles PerfilesClient,
	registros RegistrosClient,
	geo GeolocalizacionClient,
	logger *zap.Logger,
) *IncidenteService {
	return &IncidenteService{
		repo:      repo,
		tipoRepo:  tipoRepo,
		perfiles:  perfiles,
		registros: registros,
		geo:       geo,
		logger:    logger,
	}
}

func (s *IncidenteService) FindAll(ctx context.Context) ([]domain.Incidente, error) {
	return s.repo.FindAll(ctx)
}

func (s *IncidenteService) FindByID(ctx context.Context, id int64) (*domain.Incidente, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *IncidenteService) FindByCiudadano(ctx context.Context, idCiudadano int64) ([]domain.Incidente, error) {
	if err := validation.RequireID("id_ciudadano", idCiudadano); err != nil {
		return nil, err
	}
	return s.repo.FindByCiudadano(ctx, idCiudadano)
}

func (s *IncidenteService) Save(ctx context.Context, i *domain.Incidente) (*domain.Incidente, error) {
	if i == nil {
		return nil, errs.Invalid("incidente is required")
	}
	i.IDIncidente = 0
	i.Normalize()
	if err := validation.Struct(i); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, i, nil); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, i)
}

func (s *IncidenteService) Update(ctx context.Context, id int64, patch *domain.IncidentePatch) (*domain.Incidente, error) {
	if patch == nil {
		return nil, errs.Invalid("incidente is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := *current
	patch.Apply(current)
	current.Normalize()
	if err := validation.Struct(current); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, current, &previous); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	if current.IDEstado != previous.IDEstado {
		s.recordEstado(ctx, current.IDIncidente, previous.IDEstado, current.IDEstado)
	}
	return current, nil
}

func (s *IncidenteService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Assign sets the responder in charge of the incident
func (s *IncidenteService) Assign(ctx context.Context, id, idUsuario int64) (*domain.Incidente, error) {
	if err := validation.RequireID("id_usuario", idUsuario); err != nil {
		return nil, err
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.perfiles.GetUsuario(ctx, idUsuario); err != nil {
		return nil, err
	}
	current.IDUsuarioAsignado = lo.ToPtr(idUsuario)
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	s.logger.Info("incidente assigned", zap.Int64("id_incidente", id), zap.Int64("id_usuario", idUsuario))
	return current, nil
}

// UploadFoto stores the picture in Registros and links it to the incident
func (s *IncidenteService) UploadFoto(ctx context.Context, id int64, filename string, r io.Reader) (*domain.Incidente, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	foto, err := s.registros.UploadFoto(ctx, filename, r)
	if err != nil {
		return nil, err
	}
	current.IDFoto = lo.ToPtr(foto.IDFoto)
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Registro reports an incident together with the address where it happened. The address is
// created in Geolocalización only after every other field checks out.
func (s *IncidenteService) Registro(ctx context.Context, req *domain.IncidenteRegistro) (*domain.Incidente, error) {
	if req == nil || req.Incidente == nil {
		return nil, errs.Invalid("incidente is required")
	}
	if req.Direccion == nil {
		return nil, errs.Invalid("direccion is required")
	}
	i := req.Incidente
	i.IDIncidente = 0
	i.IDDireccion = 0
	i.Normalize()
	if err := validation.StructExcept(i, "IDDireccion"); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, i, nil); err != nil {
		return nil, err
	}

	d := req.Direccion
	direccion, err := s.geo.SaveDireccion(ctx, &client.DireccionDTO{
		Calle:             d.Calle,
		Numero:            d.Numero,
		Villa:             d.Villa,
		Complemento:       d.Complemento,
		IDComuna:          d.IDComuna,
		IDGeolocalizacion: d.IDGeolocalizacion,
	})
	if err != nil {
		return nil, err
	}
	i.IDDireccion = direccion.IDDireccion

	created, err := s.repo.Create(ctx, i)
	if err != nil {
		s.logger.Warn("registro aborted after direccion was created",
			zap.Int64("id_direccion", direccion.IDDireccion), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Export incidents with their tipo names resolved, ordered by id
func (s *IncidenteService) Export(ctx context.Context) ([]domain.IncidenteResumen, error) {
	incidentes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tipos, err := s.tipoRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	nombres := lo.SliceToMap(tipos, func(t domain.TipoIncidente) (int64, string) {
		return t.IDTipoIncidente, t.Nombre
	})
	return lo.Map(incidentes, func(i domain.Incidente, _ int) domain.IncidenteResumen {
		return domain.IncidenteResumen{
			IDIncidente:       i.IDIncidente,
			Titulo:            i.Titulo,
			Tipo:              nombres[i.IDTipoIncidente],
			Detalle:           i.Detalle,
			FechaRegistro:     i.FechaRegistro,
			IDCiudadano:       i.IDCiudadano,
			IDEstado:          i.IDEstado,
			IDDireccion:       i.IDDireccion,
			IDUsuarioAsignado: i.IDUsuarioAsignado,
		}
	}), nil
}

// checkReferences validates referenced rows. With previous set, only references that
// changed are looked up again. A zero direccion (not created yet) is skipped.
func (s *IncidenteService) checkReferences(ctx context.Context, i, previous *domain.Incidente) error {
	changed := func(cur, prev int64) bool { return previous == nil || cur != prev }
	var prev domain.Incidente
	if previous != nil {
		prev = *previous
	}

	if changed(i.IDTipoIncidente, prev.IDTipoIncidente) {
		if _, err := s.tipoRepo.FindByID(ctx, i.IDTipoIncidente); err != nil {
			return requireLocal("id_tipo_incidente", i.IDTipoIncidente, err)
		}
	}
	if changed(i.IDCiudadano, prev.IDCiudadano) {
		if _, err := s.perfiles.GetCiudadano(ctx, i.IDCiudadano); err != nil {
			return err
		}
	}
	if changed(i.IDEstado, prev.IDEstado) {
		if _, err := s.registros.GetEstado(ctx, i.IDEstado); err != nil {
			return err
		}
	}
	if i.IDDireccion != 0 && changed(i.IDDireccion, prev.IDDireccion) {
		if _, err := s.geo.GetDireccion(ctx, i.IDDireccion); err != nil {
			return err
		}
	}
	if i.IDUsuarioAsignado != nil && changed(*i.IDUsuarioAsignado, lo.FromPtr(prev.IDUsuarioAsignado)) {
		if _, err := s.perfiles.GetUsuario(ctx, *i.IDUsuarioAsignado); err != nil {
			return err
		}
	}
	return nil
}

// recordEstado posts the estado change to Registros; failures are logged only
func (s *IncidenteService) recordEstado(ctx context.Context, id, anterior, nuevo int64) {
	_, err := s.registros.CreateHistorial(ctx, &client.HistorialDTO{
		Entidad:          HistorialEntidad,
		IDEntidad:        id,
		IDEstadoAnterior: lo.ToPtr(anterior),
		IDEstadoNuevo:    nuevo,
		Detalle:          "cambio de estado del incidente",
	})
	if err != nil {
		s.logger.Error("failed to record incidente historial", zap.Int64("id_incidente", id), zap.Error(err))
	}
}
