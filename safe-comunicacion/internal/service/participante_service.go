package service

import (
	"context"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-comunicacion/internal/domain"
	"safe-rescue/safe-comunicacion/internal/repository"

	"go.uber.org/zap"
)

// ParticipanteService conversation membership. A usuario joins a conversacion at most once.
type ParticipanteService struct {
	repo             repository.ParticipanteRepository
	conversacionRepo repository.ConversacionRepository
	perfiles         PerfilesClient
	logger           *zap.Logger
}

func NewParticipanteService(
	repo repository.ParticipanteRepository,
	conversacionRepo repository.ConversacionRepository,
	perfiles PerfilesClient,
	logger *zap.Logger,
) *ParticipanteService {
	return &ParticipanteService{repo: repo, conversacionRepo: conversacionRepo, perfiles: perfiles, logger: logger}
}

func (s *ParticipanteService) FindAll(ctx context.Context) ([]domain.ParticipanteConversacion, error) {
	return s.repo.FindAll(ctx)
}

func (s *ParticipanteService) FindByID(ctx context.Context, id int64) (*domain.ParticipanteConversacion, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ParticipanteService) FindByConversacion(ctx context.Context, idConversacion int64) ([]domain.ParticipanteConversacion, error) {
	if _, err := s.conversacionRepo.FindByID(ctx, idConversacion); err != nil {
		return nil, err
	}
	return s.repo.FindByConversacion(ctx, idConversacion)
}

func (s *ParticipanteService) Save(ctx context.Context, p *domain.ParticipanteConversacion) (*domain.ParticipanteConversacion, error) {
	if p == nil {
		return nil, errs.Invalid("participante is required")
	}
	p.IDParticipanteConversacion = 0
	if err := s.validate(ctx, p); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info("usuario joined conversacion",
		zap.Int64("id_conversacion", created.IDConversacion), zap.Int64("id_usuario", created.IDUsuario))
	return created, nil
}

// Join adds idUsuario to the conversacion
func (s *ParticipanteService) Join(ctx context.Context, idConversacion, idUsuario int64) (*domain.ParticipanteConversacion, error) {
	return s.Save(ctx, &domain.ParticipanteConversacion{IDConversacion: idConversacion, IDUsuario: idUsuario})
}

func (s *ParticipanteService) Update(ctx context.Context, id int64, patch *domain.ParticipanteConversacionPatch) (*domain.ParticipanteConversacion, error) {
	if patch == nil {
		return nil, errs.Invalid("participante is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *current
	patch.Apply(current)
	if *current == before {
		return current, nil
	}
	if err := s.validate(ctx, current); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *ParticipanteService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ParticipanteService) validate(ctx context.Context, p *domain.ParticipanteConversacion) error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if _, err := s.conversacionRepo.FindByID(ctx, p.IDConversacion); err != nil {
		return requireLocal("id_conversacion", p.IDConversacion, err)
	}
	if _, err := s.perfiles.GetUsuario(ctx, p.IDUsuario); err != nil {
		return err
	}
	joined, err := s.repo.Exists(ctx, p.IDConversacion, p.IDUsuario)
	if err != nil {
		return err
	}
	if joined {
		return errs.Conflict("usuario %d already participates in conversacion %d", p.IDUsuario, p.IDConversacion)
	}
	return nil
}
