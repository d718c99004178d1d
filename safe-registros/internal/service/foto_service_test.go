package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-registros/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// pngBytes minimal PNG signature followed by an IHDR chunk header
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)

func newTestFotoService(t *testing.T, maxBytes int64) (*FotoService, *fakeFotoRepo, string) {
	t.Helper()
	dir := t.TempDir()
	files, err := storage.NewFileStore(dir, maxBytes)
	require.NoError(t, err)
	repo := newFakeFotoRepo()
	return NewFotoService(repo, files, "/api-registros/v1/fotos/archivos/", zap.NewNop()), repo, dir
}

func TestFotoService_UploadPNG(t *testing.T) {
	svc, repo, dir := newTestFotoService(t, 1024)

	foto, err := svc.Upload(context.Background(), bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, "image/png", foto.Tipo)
	assert.Equal(t, int64(len(pngBytes)), foto.Tamano)
	assert.True(t, strings.HasPrefix(foto.URL, "/api-registros/v1/fotos/archivos/"))
	assert.True(t, strings.HasSuffix(foto.URL, ".png"))
	assert.Len(t, repo.rows, 1)

	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(foto.URL)))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)
}

func TestFotoService_UploadRejectsNonImage(t *testing.T) {
	svc, repo, dir := newTestFotoService(t, 1024)

	_, err := svc.Upload(context.Background(), strings.NewReader("just some text"))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "must be an image")
	assert.Empty(t, repo.rows)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = svc.Upload(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestFotoService_UploadTooLarge(t *testing.T) {
	svc, repo, _ := newTestFotoService(t, 16)

	_, err := svc.Upload(context.Background(), bytes.NewReader(pngBytes))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Empty(t, repo.rows)
}

func TestFotoService_UploadRemovesFileWhenInsertFails(t *testing.T) {
	svc, repo, dir := newTestFotoService(t, 1024)
	repo.failAdd = errors.New("db down")

	_, err := svc.Upload(context.Background(), bytes.NewReader(pngBytes))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFotoService_DeleteRemovesStoredFile(t *testing.T) {
	svc, repo, dir := newTestFotoService(t, 1024)
	ctx := context.Background()
	foto, err := svc.Upload(ctx, bytes.NewReader(pngBytes))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, foto.IDFoto))
	assert.Empty(t, repo.rows)
	_, err = os.Stat(filepath.Join(dir, filepath.Base(foto.URL)))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, svc.Delete(ctx, foto.IDFoto), errs.ErrNotFound)
}
