package service

import (
	"context"
	"testing"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-perfiles/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBomberoService_ChangeEquipoRecordsHistorial(t *testing.T) {
	f := newPerfilesFixture()
	ctx := context.Background()
	_, err := newTestUsuarioService(f).Save(ctx, validUsuario())
	require.NoError(t, err)
	svc := NewBomberoService(f.bomberos, f.usuarios, f.equipos, f.historial, zap.NewNop())

	_, err = svc.Save(ctx, &domain.Bombero{IDUsuario: 1, IDEquipo: 1})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, &domain.BomberoPatch{IDEquipo: int64Ptr(1)})
	require.NoError(t, err)
	assert.Empty(t, f.historial.rows)

	moved, err := svc.Update(ctx, 1, &domain.BomberoPatch{IDEquipo: int64Ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved.IDEquipo)

	require.Len(t, f.historial.rows, 1)
	h := f.historial.rows[1]
	assert.Equal(t, "Rescate", h.EstadoAnterior)
	assert.Equal(t, "Haz-Mat", h.EstadoNuevo)
	assert.Equal(t, int64(2), *h.IDEquipo)

	list, err := svc.FindByEquipo(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBomberoService_UnknownEquipo(t *testing.T) {
	f := newPerfilesFixture()
	ctx := context.Background()
	_, err := newTestUsuarioService(f).Save(ctx, validUsuario())
	require.NoError(t, err)
	svc := NewBomberoService(f.bomberos, f.usuarios, f.equipos, f.historial, zap.NewNop())

	_, err = svc.Save(ctx, &domain.Bombero{IDUsuario: 1, IDEquipo: 9})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "id_equipo 9 does not exist")

	_, err = svc.Save(ctx, &domain.Bombero{IDUsuario: 1, IDEquipo: 1})
	require.NoError(t, err)
	_, err = svc.Update(ctx, 1, &domain.BomberoPatch{IDEquipo: int64Ptr(9)})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Equal(t, int64(1), f.bomberos.rows[1].IDEquipo)
}
