package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-incidentes/internal/domain"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidenteSave_Valid(t *testing.T) {
	f := newIncidentesFixture()
	inc, err := f.service().Save(context.Background(), validIncidente())
	require.NoError(t, err)
	assert.Equal(t, int64(1), inc.IDIncidente)
	assert.False(t, inc.FechaRegistro.IsZero())
	assert.Empty(t, f.registros.historial)
}

func TestIncidenteSave_Nil(t *testing.T) {
	f := newIncidentesFixture()
	_, err := f.service().Save(context.Background(), nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Empty(t, f.incidentes.rows)
}

func TestIncidenteSave_FieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Incidente)
		msg    string
	}{
		{"titulo missing", func(i *domain.Incidente) { i.Titulo = "  " }, "titulo is required"},
		{"titulo too long", func(i *domain.Incidente) { i.Titulo = strings.Repeat("t", 51) }, "titulo must not exceed 50 characters"},
		{"detalle too long", func(i *domain.Incidente) { i.Detalle = strings.Repeat("d", 401) }, "detalle must not exceed 400 characters"},
		{"direccion missing", func(i *domain.Incidente) { i.IDDireccion = 0 }, "id_direccion is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIncidentesFixture()
			inc := validIncidente()
			tt.mutate(inc)
			_, err := f.service().Save(context.Background(), inc)
			require.ErrorIs(t, err, errs.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestIncidenteSave_LengthBoundary(t *testing.T) {
	f := newIncidentesFixture()
	inc := validIncidente()
	inc.Titulo = strings.Repeat("t", 50)
	inc.Detalle = strings.Repeat("d", 400)
	_, err := f.service().Save(context.Background(), inc)
	assert.NoError(t, err)
}

func TestIncidenteSave_References(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Incidente)
		target error
		msg    string
	}{
		{"unknown tipo", func(i *domain.Incidente) { i.IDTipoIncidente = 9 }, errs.ErrInvalidArgument, "id_tipo_incidente 9 does not exist"},
		{"unknown ciudadano", func(i *domain.Incidente) { i.IDCiudadano = 12 }, errs.ErrRemoteNotFound, "ciudadano id=12"},
		{"unknown estado", func(i *domain.Incidente) { i.IDEstado = 7 }, errs.ErrRemoteNotFound, "estado id=7"},
		{"unknown direccion", func(i *domain.Incidente) { i.IDDireccion = 11 }, errs.ErrRemoteNotFound, "direccion id=11"},
		{"unknown asignado", func(i *domain.Incidente) { i.IDUsuarioAsignado = lo.ToPtr(int64(99)) }, errs.ErrRemoteNotFound, "usuario id=99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIncidentesFixture()
			inc := validIncidente()
			tt.mutate(inc)
			_, err := f.service().Save(context.Background(), inc)
			require.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Empty(t, f.incidentes.rows)
		})
	}
}

func TestIncidenteUpdate_EstadoChangePostsHistorial(t *testing.T) {
	f := newIncidentesFixture()
	svc := f.service()
	ctx := context.Background()
	_, err := svc.Save(ctx, validIncidente())
	require.NoError(t, err)

	inc, err := svc.Update(ctx, 1, &domain.IncidentePatch{IDEstado: lo.ToPtr(int64(2))})
	require.NoError(t, err)
	assert.Equal(t, int64(2), inc.IDEstado)

	require.Len(t, f.registros.historial, 1)
	h := f.registros.historial[0]
	assert.Equal(t, HistorialEntidad, h.Entidad)
	assert.Equal(t, int64(1), h.IDEntidad)
	require.NotNil(t, h.IDEstadoAnterior)
	assert.Equal(t, int64(1), *h.IDEstadoAnterior)
	assert.Equal(t, int64(2), h.IDEstadoNuevo)
}

func TestIncidenteUpdate_NoEstadoChangeNoHistorial(t *testing.T) {
	f := newIncidentesFixture()
	svc := f.service()
	ctx := context.Background()
	_, err := svc.Save(ctx, validIncidente())
	require.NoError(t, err)

	inc, err := svc.Update(ctx, 1, &domain.IncidentePatch{Titulo: lo.ToPtr("Incendio controlado")})
	require.NoError(t, err)
	assert.Equal(t, "Incendio controlado", inc.Titulo)
	assert.Equal(t, "Humo saliendo de la ventana del segundo piso", inc.Detalle)
	assert.Empty(t, f.registros.historial)
}

func TestIncidenteUpdate_HistorialFailureIsNotFatal(t *testing.T) {
	f := newIncidentesFixture()
	f.registros.historialErr = errs.Upstream("registros", errors.New("connection refused"))
	svc := f.service()
	ctx := context.Background()
	_, err := svc.Save(ctx, validIncidente())
	require.NoError(t, err)

	inc, err := svc.Update(ctx, 1, &domain.IncidentePatch{IDEstado: lo.ToPtr(int64(2))})
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.incidentes.rows[1].IDEstado)
	assert.Equal(t, int64(2), inc.IDEstado)
}

func TestIncidenteUpdate_UnknownEstadoLeavesRowUntouched(t *testing.T) {
	f := newIncidentesFixture()
	svc := f.service()
	ctx := context.Background()
	_, err := svc.Save(ctx, validIncidente())
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, &domain.IncidentePatch{IDEstado: lo.ToPtr(int64(5))})
	require.ErrorIs(t, err, errs.ErrRemoteNotFound)
	assert.Equal(t, int64(1), f.incidentes.rows[1].IDEstado)
}

func TestIncidenteUpdate_Missing(t *testing.T) {
	f := newIncidentesFixture()
	_, err := f.service().Update(context.Background(), 3, &domain.IncidentePatch{})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestIncidenteAssign(t *testing.T) {
	f := newIncidentesFixture()
	svc := f.service()
	ctx := context.Background()
	_, err := svc.Save(ctx, validIncidente())
	require.NoError(t, err)

	inc, err := svc.Assign(ctx, 1, 12)
	require.NoError(t, err)
	require.NotNil(t, inc.IDUsuarioAsignado)
	assert.Equal(t, int64(12), *inc.IDUsuarioAsignado)

	_, err = svc.Assign(ctx, 1, 40)
	assert.ErrorIs(t, err, errs.ErrRemoteNotFound)
	assert.Equal(t, int64(12), *f.incidentes.rows[1].IDUsuarioAsignado)

	_, err = svc.Assign(ctx, 8, 12)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestIncidenteUploadFoto(t *testing.T) {
	f := newIncidentesFixture()
	svc := f.service()
	ctx := context.Background()
	_, err := svc.Save(ctx, validIncidente())
	require.NoError(t, err)

	inc, err := svc.UploadFoto(ctx, 1, "fuego.jpg", strings.NewReader("JPEG"))
	require.NoError(t, err)
	require.NotNil(t, inc.IDFoto)
	assert.Equal(t, int64(71), *inc.IDFoto)

	_, err = svc.UploadFoto(ctx, 2, "fuego.jpg", strings.NewReader("JPEG"))
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, 1, f.registros.uploads)
}

func TestIncidenteRegistro_CreatesDireccion(t *testing.T) {
	f := newIncidentesFixture()
	inc := validIncidente()
	inc.IDDireccion = 0
	out, err := f.service().Registro(context.Background(), &domain.IncidenteRegistro{
		Incidente: inc,
		Direccion: &domain.DireccionRegistro{Calle: "Av. Pajaritos", Numero: "1200", IDComuna: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), out.IDDireccion)
	require.Len(t, f.geo.saved, 1)
	assert.Equal(t, "Av. Pajaritos", f.geo.saved[0].Calle)
}

func TestIncidenteRegistro_InvalidIncidenteCreatesNothing(t *testing.T) {
	f := newIncidentesFixture()
	inc := validIncidente()
	inc.IDCiudadano = 30
	_, err := f.service().Registro(context.Background(), &domain.IncidenteRegistro{
		Incidente: inc,
		Direccion: &domain.DireccionRegistro{Calle: "Av. Pajaritos", Numero: "1200", IDComuna: 3},
	})
	require.ErrorIs(t, err, errs.ErrRemoteNotFound)
	assert.Empty(t, f.geo.saved)
	assert.Empty(t, f.incidentes.rows)
}

func TestIncidenteRegistro_MissingParts(t *testing.T) {
	f := newIncidentesFixture()
	svc := f.service()
	_, err := svc.Registro(context.Background(), nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = svc.Registro(context.Background(), &domain.IncidenteRegistro{Incidente: validIncidente()})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "direccion is required")
}

func TestIncidenteRegistro_DireccionRejected(t *testing.T) {
	f := newIncidentesFixture()
	f.geo.saveErr = errs.Invalid("calle is required")
	_, err := f.service().Registro(context.Background(), &domain.IncidenteRegistro{
		Incidente: validIncidente(),
		Direccion: &domain.DireccionRegistro{IDComuna: 3},
	})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Empty(t, f.incidentes.rows)
}

func TestIncidenteExport_ResolvesTipoNames(t *testing.T) {
	f := newIncidentesFixture()
	svc := f.service()
	ctx := context.Background()
	_, err := svc.Save(ctx, validIncidente())
	require.NoError(t, err)
	second := validIncidente()
	second.IDTipoIncidente = 2
	second.Titulo = "Gato en árbol"
	_, err = svc.Save(ctx, second)
	require.NoError(t, err)

	rows, err := svc.Export(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Incendio", rows[0].Tipo)
	assert.Equal(t, "Rescate", rows[1].Tipo)
	assert.Equal(t, "Gato en árbol", rows[1].Titulo)
}

func TestIncidenteFindByCiudadano(t *testing.T) {
	f := newIncidentesFixture()
	svc := f.service()
	ctx := context.Background()
	_, err := svc.Save(ctx, validIncidente())
	require.NoError(t, err)

	list, err := svc.FindByCiudadano(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.FindByCiudadano(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestIncidenteDelete(t *testing.T) {
	f := newIncidentesFixture()
	svc := f.service()
	ctx := context.Background()
	_, err := svc.Save(ctx, validIncidente())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), errs.ErrNotFound)
}
