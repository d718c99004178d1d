package service

import (
	"context"
	"io"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-perfiles/internal/domain"
	"safe-rescue/safe-perfiles/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioService user accounts. Passwords are stored as bcrypt hashes and estado changes
// are recorded in historial_usuario.
type UsuarioService struct {
	repo      repository.UsuarioRepository
	tipoRepo  repository.TipoUsuarioRepository
	historial repository.HistorialUsuarioRepository
	registros RegistrosClient
	hashCost  int
	logger    *zap.Logger
}

func NewUsuarioService(
	repo repository.UsuarioRepository,
	tipoRepo repository.TipoUsuarioRepository,
	historial repository.HistorialUsuarioRepository,
	registros RegistrosClient,
	logger *zap.Logger,
) *UsuarioService {
	return &UsuarioService{
		repo:      repo,
		tipoRepo:  tipoRepo,
		historial: historial,
		registros: registros,
		hashCost:  bcrypt.DefaultCost,
		logger:    logger,
	}
}

func (s *UsuarioService) FindAll(ctx context.Context) ([]domain.Usuario, error) {
	return s.repo.FindAll(ctx)
}

func (s *UsuarioService) FindByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UsuarioService) Save(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error) {
	if err := s.prepare(ctx, u); err != nil {
		return nil, err
	}
	return s.create(ctx, u)
}

// prepare validates a new user and hashes its password without persisting anything
func (s *UsuarioService) prepare(ctx context.Context, u *domain.Usuario) error {
	if u == nil {
		return errs.Invalid("usuario is required")
	}
	u.IDUsuario = 0
	u.IntentosFallidos = 0
	if u.Contrasenia == "" {
		return errs.Invalid("contrasenia is required")
	}
	if err := s.validate(ctx, u); err != nil {
		return err
	}
	if _, err := s.registros.GetEstado(ctx, u.IDEstado); err != nil {
		return err
	}
	return s.hashPassword(u)
}

func (s *UsuarioService) create(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error) {
	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	s.logger.Info("usuario created", zap.Int64("id_usuario", created.IDUsuario))
	return created, nil
}

func (s *UsuarioService) Update(ctx context.Context, id int64, patch *domain.UsuarioPatch) (*domain.Usuario, error) {
	if patch == nil {
		return nil, errs.Invalid("usuario is required")
	}
	if patch.Contrasenia != nil && *patch.Contrasenia == "" {
		return nil, errs.Invalid("contrasenia is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousEstado := current.IDEstado
	patch.Apply(current)
	if err := s.validate(ctx, current); err != nil {
		return nil, err
	}
	estadoChanged := current.IDEstado != previousEstado
	if estadoChanged {
		if _, err := s.registros.GetEstado(ctx, current.IDEstado); err != nil {
			return nil, err
		}
	}
	if patch.Contrasenia != nil {
		if err := s.hashPassword(current); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	if estadoChanged {
		s.recordEstado(ctx, current, previousEstado)
	}
	return current, nil
}

func (s *UsuarioService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// UploadFoto stores the picture in Registros and links it to the user
func (s *UsuarioService) UploadFoto(ctx context.Context, id int64, filename string, r io.Reader) (*domain.Usuario, error) {
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

func (s *UsuarioService) validate(ctx context.Context, u *domain.Usuario) error {
	u.Normalize()
	if err := validation.Struct(u); err != nil {
		return err
	}
	if !domain.RunValido(u.Run, u.Dv) {
		return errs.Invalid("dv does not match run")
	}
	if _, err := s.tipoRepo.FindByID(ctx, u.IDTipoUsuario); err != nil {
		return requireLocal("id_tipo_usuario", u.IDTipoUsuario, err)
	}
	return nil
}

func (s *UsuarioService) hashPassword(u *domain.Usuario) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Contrasenia), s.hashCost)
	if err != nil {
		return errs.Invalid("contrasenia: %v", err)
	}
	u.PasswordHash = string(hash)
	u.Contrasenia = ""
	return nil
}

func (s *UsuarioService) recordEstado(ctx context.Context, u *domain.Usuario, previous int64) {
	h := &domain.HistorialUsuario{
		IDUsuario:      lo.ToPtr(u.IDUsuario),
		EstadoAnterior: estadoNombre(ctx, s.registros, previous, s.logger),
		EstadoNuevo:    estadoNombre(ctx, s.registros, u.IDEstado, s.logger),
		Detalle:        "cambio de estado del usuario",
	}
	if _, err := s.historial.Create(ctx, h); err != nil {
		s.logger.Error("failed to record usuario historial", zap.Int64("id_usuario", u.IDUsuario), zap.Error(err))
	}
}
