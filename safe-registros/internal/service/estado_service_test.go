package service

import (
	"context"
	"strings"
	"testing"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-registros/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEstadoService_Save(t *testing.T) {
	repo := newFakeEstadoRepo()
	svc := NewEstadoService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Save(ctx, nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Empty(t, repo.rows)

	_, err = svc.Save(ctx, &domain.Estado{Nombre: strings.Repeat("x", 50)})
	require.NoError(t, err)

	_, err = svc.Save(ctx, &domain.Estado{Nombre: strings.Repeat("x", 51)})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = svc.Save(ctx, &domain.Estado{Nombre: "Activo", Descripcion: strings.Repeat("d", 101)})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "descripcion must not exceed 100 characters")
}

func TestEstadoService_SaveDuplicate(t *testing.T) {
	svc := NewEstadoService(newFakeEstadoRepo("Activo"), zap.NewNop())

	_, err := svc.Save(context.Background(), &domain.Estado{Nombre: " Activo "})
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestEstadoService_UpdateAndDelete(t *testing.T) {
	repo := newFakeEstadoRepo("Activo")
	svc := NewEstadoService(repo, zap.NewNop())
	ctx := context.Background()

	updated, err := svc.Update(ctx, 1, &domain.EstadoPatch{Descripcion: strPtr("en servicio")})
	require.NoError(t, err)
	assert.Equal(t, "Activo", updated.Nombre)
	assert.Equal(t, "en servicio", updated.Descripcion)

	repo.inUse[1] = true
	assert.ErrorIs(t, svc.Delete(ctx, 1), errs.ErrConflict)
	assert.ErrorIs(t, svc.Delete(ctx, 2), errs.ErrNotFound)
}
