package service

import (
	"context"

	"safe-rescue/safe-common/client"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-perfiles/internal/domain"
	"safe-rescue/safe-perfiles/internal/repository"

	"go.uber.org/zap"
)

// CiudadanoService citizen profiles; the address is owned by Geolocalización
type CiudadanoService struct {
	repo     repository.CiudadanoRepository
	usuarios *UsuarioService
	geo      GeolocalizacionClient
	logger   *zap.Logger
}

func NewCiudadanoService(repo repository.CiudadanoRepository, usuarios *UsuarioService, geo GeolocalizacionClient, logger *zap.Logger) *CiudadanoService {
	return &CiudadanoService{repo: repo, usuarios: usuarios, geo: geo, logger: logger}
}

func (s *CiudadanoService) FindAll(ctx context.Context) ([]domain.Ciudadano, error) {
	return s.repo.FindAll(ctx)
}

func (s *CiudadanoService) FindByID(ctx context.Context, idUsuario int64) (*domain.Ciudadano, error) {
	return s.repo.FindByID(ctx, idUsuario)
}

// Save attaches a citizen profile to an existing usuario
func (s *CiudadanoService) Save(ctx context.Context, c *domain.Ciudadano) (*domain.Ciudadano, error) {
	if c == nil {
		return nil, errs.Invalid("ciudadano is required")
	}
	if err := validation.Struct(c); err != nil {
		return nil, err
	}
	if _, err := s.usuarios.FindByID(ctx, c.IDUsuario); err != nil {
		return nil, requireLocal("id_usuario", c.IDUsuario, err)
	}
	if _, err := s.geo.GetDireccion(ctx, c.IDDireccion); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *CiudadanoService) Update(ctx context.Context, idUsuario int64, patch *domain.CiudadanoPatch) (*domain.Ciudadano, error) {
	if patch == nil {
		return nil, errs.Invalid("ciudadano is required")
	}
	current, err := s.repo.FindByID(ctx, idUsuario)
	if err != nil {
		return nil, err
	}
	patch.Apply(current)
	if err := validation.Struct(current); err != nil {
		return nil, err
	}
	if patch.IDDireccion != nil {
		if _, err := s.geo.GetDireccion(ctx, current.IDDireccion); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *CiudadanoService) Delete(ctx context.Context, idUsuario int64) error {
	if _, err := s.repo.FindByID(ctx, idUsuario); err != nil {
		return err
	}
	return s.repo.Delete(ctx, idUsuario)
}

// Registro signs up a citizen: validates the user, creates the address in Geolocalización,
// then the usuario and ciudadano rows. A failed ciudadano insert removes the usuario again.
func (s *CiudadanoService) Registro(ctx context.Context, req *domain.CiudadanoRegistro) (*domain.CiudadanoPerfil, error) {
	if req == nil || req.Usuario == nil {
		return nil, errs.Invalid("usuario is required")
	}
	if req.Direccion == nil {
		return nil, errs.Invalid("direccion is required")
	}
	if err := s.usuarios.prepare(ctx, req.Usuario); err != nil {
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

	usuario, err := s.usuarios.create(ctx, req.Usuario)
	if err != nil {
		s.logger.Warn("registro aborted after direccion was created",
			zap.Int64("id_direccion", direccion.IDDireccion), zap.Error(err))
		return nil, err
	}

	ciudadano, err := s.repo.Create(ctx, &domain.Ciudadano{IDUsuario: usuario.IDUsuario, IDDireccion: direccion.IDDireccion})
	if err != nil {
		if delErr := s.usuarios.repo.Delete(ctx, usuario.IDUsuario); delErr != nil {
			s.logger.Error("failed to roll back usuario", zap.Int64("id_usuario", usuario.IDUsuario), zap.Error(delErr))
		}
		return nil, err
	}
	return &domain.CiudadanoPerfil{Usuario: usuario, Ciudadano: ciudadano}, nil
}
