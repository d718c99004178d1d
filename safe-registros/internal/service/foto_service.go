package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/validation"
	"safe-rescue/safe-registros/internal/domain"
	"safe-rescue/safe-registros/internal/repository"
	"safe-rescue/safe-registros/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// sniffLen bytes read before deciding the content type
const sniffLen = 3072

var imageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// FileStore where uploaded pictures are written
type FileStore interface {
	Save(r io.Reader, ext string) (string, int64, error)
	Remove(name string) error
}

// FotoService picture metadata plus the upload flow
type FotoService struct {
	repo      repository.FotoRepository
	files     FileStore
	publicURL string
	logger    *zap.Logger
}

// NewFotoService publicURL is the prefix under which stored files are served
func NewFotoService(repo repository.FotoRepository, files FileStore, publicURL string, logger *zap.Logger) *FotoService {
	return &FotoService{repo: repo, files: files, publicURL: strings.TrimRight(publicURL, "/"), logger: logger}
}

func (s *FotoService) FindAll(ctx context.Context) ([]domain.Foto, error) {
	return s.repo.FindAll(ctx)
}

func (s *FotoService) FindByID(ctx context.Context, id int64) (*domain.Foto, error) {
	return s.repo.FindByID(ctx, id)
}

// Save registers a picture hosted elsewhere
func (s *FotoService) Save(ctx context.Context, f *domain.Foto) (*domain.Foto, error) {
	if f == nil {
		return nil, errs.Invalid("foto is required")
	}
	f.IDFoto = 0
	f.Normalize()
	if err := validation.Struct(f); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, f)
}

// Upload checks the content is an image, stores it and inserts the Foto row
func (s *FotoService) Upload(ctx context.Context, r io.Reader) (*domain.Foto, error) {
	if r == nil {
		return nil, errs.Invalid("archivo is required")
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, errs.Invalid("could not read archivo: %v", err)
	}
	if n == 0 {
		return nil, errs.Invalid("archivo is empty")
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	tipo := strings.SplitN(mt.String(), ";", 2)[0]
	if !lo.Contains(imageTypes, tipo) {
		return nil, errs.Invalid("archivo must be an image, got %s", tipo)
	}

	name, size, err := s.files.Save(io.MultiReader(bytes.NewReader(head), r), mt.Extension())
	if errors.Is(err, storage.ErrTooLarge) {
		return nil, errs.Invalid("archivo exceeds the size limit")
	}
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Foto{URL: s.publicURL + "/" + name, Tipo: tipo, Tamano: size})
	if err != nil {
		if rmErr := s.files.Remove(name); rmErr != nil {
			s.logger.Warn("failed to remove orphan file", zap.String("file", name), zap.Error(rmErr))
		}
		return nil, err
	}
	s.logger.Info("foto uploaded", zap.Int64("id_foto", created.IDFoto), zap.String("tipo", tipo), zap.Int64("tamano", size))
	return created, nil
}

func (s *FotoService) Update(ctx context.Context, id int64, patch *domain.FotoPatch) (*domain.Foto, error) {
	if patch == nil {
		return nil, errs.Invalid("foto is required")
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(current)
	current.Normalize()
	if err := validation.Struct(current); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes the row and, for uploaded pictures, the stored file
func (s *FotoService) Delete(ctx context.Context, id int64) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if name, ok := strings.CutPrefix(current.URL, s.publicURL+"/"); ok {
		if err := s.files.Remove(name); err != nil {
			s.logger.Warn("failed to remove stored file", zap.String("file", name), zap.Error(err))
		}
	}
	return nil
}
