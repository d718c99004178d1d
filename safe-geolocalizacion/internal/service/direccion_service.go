package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-geolocalizacion/internal/domain"
	"safe-rescue/safe-geolocalizacion/internal/repository"

	"go.uber.org/zap"
)

// DireccionService address CRUD. Other services create and validate addresses
// through these operations.
type DireccionService struct {
	repo       repository.DireccionRepository
	comunaRepo repository.ComunaRepository
	coordRepo  repository.CoordenadasRepository
	logger     *zap.Logger
}

func NewDireccionService(
	repo repository.DireccionRepository,
	comunaRepo repository.ComunaRepository,
	coordRepo repository.CoordenadasRepository,
	logger *zap.Logger,
) *DireccionService {
	return &DireccionService{repo: repo, comunaRepo: comunaRepo, coordRepo: coordRepo, logger: logger}
}

func (s *DireccionService) FindAll(ctx context.Context) ([]domain.Direccion, error) {
	return s.repo.FindAll(ctx)
}

func (s *DireccionService) FindByID(ctx context.Context, id int64) (*domain.Direccion, error) {
	return s.repo.FindByID(ctx, id)
}

// FindDetalle address with comuna, region, pais and coordinates
func (s *DireccionService) FindDetalle(ctx context.Context, id int64) (*domain.DireccionDetalle, error) {
	return s.repo.FindDetalle(ctx, id)
}

func (s *DireccionService) Save(ctx context.Context, d *domain.Direccion) (*domain.Direccion, error) {
	if d == nil {
		return nil, errs.Invalid("direccion is required")
	}
	d.IDDireccion = 0
	if err := s.validate(ctx, d); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("direccion created", zap.Int64("id_direccion", created.IDDireccion))
	return created, nil
}

func (s *DireccionService) Update(ctx context.Context, id int64, patch *domain.DireccionPatch) (*domain.Direccion, error) {
	if patch == nil {
		return nil, errs.Invalid("direccion is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(current)
	if err := s.validate(ctx, current); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *DireccionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *DireccionService) validate(ctx context.Context, d *domain.Direccion) error {
	d.Normalize()
	if err := validation.Struct(d); err != nil {
		return err
	}
	if err := requireExisting(ctx, "id_comuna", d.IDComuna, func(ctx context.Context, id int64) error {
		_, err := s.comunaRepo.FindByID(ctx, id)
		return err
	}); err != nil {
		return err
	}
	if d.IDGeolocalizacion == nil {
		return nil
	}
	return requireExisting(ctx, "id_geolocalizacion", *d.IDGeolocalizacion, func(ctx context.Context, id int64) error {
		_, err := s.coordRepo.FindByID(ctx, id)
		return err
	})
}
