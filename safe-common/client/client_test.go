package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"safe-rescue/safe-common/cache"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeEnvelope(w http.ResponseWriter, status int, result any) {
	httpx.WriteJSON(w, status, httpx.Ok(result))
}

func TestRegistrosClient_GetEstado_CachesLookups(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/api-registros/v1/estados/3", r.URL.Path)
		writeEnvelope(w, http.StatusOK, EstadoDTO{IDEstado: 3, Nombre: "Activo"})
	}))
	defer srv.Close()

	c := NewRegistrosClient(Options{BaseURL: srv.URL, KV: cache.NewMemoryKV(), CacheTTL: time.Minute})

	for i := 0; i < 2; i++ {
		estado, err := c.GetEstado(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Activo", estado.Nombre)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRegistrosClient_GetEstado_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusNotFound, httpx.Fail("estado not found"))
	}))
	defer srv.Close()

	c := NewRegistrosClient(Options{BaseURL: srv.URL})
	_, err := c.GetEstado(context.Background(), 8)
	assert.ErrorIs(t, err, errs.ErrRemoteNotFound)
}

func TestRegistrosClient_ServerErrorIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.Fail("internal server error"))
	}))
	defer srv.Close()

	c := NewRegistrosClient(Options{BaseURL: srv.URL})
	_, err := c.GetEstado(context.Background(), 1)
	assert.ErrorIs(t, err, errs.ErrUpstream)
}

func TestRegistrosClient_UnreachableIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewRegistrosClient(Options{BaseURL: url, Timeout: 200 * time.Millisecond})
	_, err := c.GetEstado(context.Background(), 1)
	assert.ErrorIs(t, err, errs.ErrUpstream)
}

func TestRegistrosClient_InvalidID(t *testing.T) {
	c := NewRegistrosClient(Options{BaseURL: "http://127.0.0.1:1"})
	_, err := c.GetEstado(context.Background(), 0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestRegistrosClient_UploadFoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api-registros/v1/fotos/upload", r.URL.Path)
		f, hdr, err := r.FormFile("archivo")
		require.NoError(t, err)
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Equal(t, "perfil.png", hdr.Filename)
		assert.Equal(t, "PNGDATA", string(b))
		writeEnvelope(w, http.StatusCreated, FotoDTO{IDFoto: 12, URL: "/fotos/abc.png", Tipo: "image/png", Tamano: 7})
	}))
	defer srv.Close()

	c := NewRegistrosClient(Options{BaseURL: srv.URL})
	foto, err := c.UploadFoto(context.Background(), "perfil.png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), foto.IDFoto)
}

func TestRegistrosClient_CreateHistorial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in HistorialDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "incidente", in.Entidad)
		assert.Equal(t, "req-9", r.Header.Get(httpx.HeaderRequestID))
		in.IDHistorial = 4
		writeEnvelope(w, http.StatusCreated, in)
	}))
	defer srv.Close()

	ctx := context.Background()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(httpx.HeaderRequestID, "req-9")
	httpx.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { ctx = r.Context() })).
		ServeHTTP(httptest.NewRecorder(), req)

	c := NewRegistrosClient(Options{BaseURL: srv.URL})
	h, err := c.CreateHistorial(ctx, &HistorialDTO{Entidad: "incidente", IDEntidad: 1, IDEstadoNuevo: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), h.IDHistorial)
}

func TestGeolocalizacionClient_SaveDireccion_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.Fail("invalid argument: calle is required"))
	}))
	defer srv.Close()

	c := NewGeolocalizacionClient(Options{BaseURL: srv.URL})
	_, err := c.SaveDireccion(context.Background(), &DireccionDTO{IDComuna: 1})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "calle is required")
}

func TestPerfilesClient_GetUsuario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-perfiles/v1/usuarios/5", r.URL.Path)
		writeEnvelope(w, http.StatusOK, UsuarioDTO{IDUsuario: 5, Nombre: "Ana"})
	}))
	defer srv.Close()

	c := NewPerfilesClient(Options{BaseURL: srv.URL})
	u, err := c.GetUsuario(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Nombre)
}

func TestPerfilesClient_GetCiudadano_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-perfiles/v1/ciudadanos/8", r.URL.Path)
		httpx.WriteJSON(w, http.StatusNotFound, httpx.Fail("ciudadano not found"))
	}))
	defer srv.Close()

	c := NewPerfilesClient(Options{BaseURL: srv.URL})
	_, err := c.GetCiudadano(context.Background(), 8)
	assert.ErrorIs(t, err, errs.ErrRemoteNotFound)
}

// dropFirstConnection closes the first connection without answering and
// hands every later request to next.
func dropFirstConnection(t *testing.T, calls *int32, next http.Handler) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(calls, 1) == 1 {
			conn, _, err := w.(http.Hijacker).Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func TestRegistrosClient_GetEstado_RetriesDroppedConnection(t *testing.T) {
	var calls int32
	srv := dropFirstConnection(t, &calls, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusOK, EstadoDTO{IDEstado: 2, Nombre: "Inactivo"})
	}))
	defer srv.Close()

	c := NewRegistrosClient(Options{BaseURL: srv.URL})
	estado, err := c.GetEstado(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Inactivo", estado.Nombre)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGeolocalizacionClient_SaveDireccion_SentOnce(t *testing.T) {
	var calls int32
	srv := dropFirstConnection(t, &calls, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusCreated, DireccionDTO{IDDireccion: 1})
	}))
	defer srv.Close()

	c := NewGeolocalizacionClient(Options{BaseURL: srv.URL})
	_, err := c.SaveDireccion(context.Background(), &DireccionDTO{Calle: "Alameda", Numero: "100", IDComuna: 1})
	require.ErrorIs(t, err, errs.ErrUpstream)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRegistrosClient_UploadFoto_SentOnce(t *testing.T) {
	var calls int32
	srv := dropFirstConnection(t, &calls, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusCreated, FotoDTO{IDFoto: 1})
	}))
	defer srv.Close()

	c := NewRegistrosClient(Options{BaseURL: srv.URL})
	_, err := c.UploadFoto(context.Background(), "perfil.png", strings.NewReader("PNGDATA"))
	require.ErrorIs(t, err, errs.ErrUpstream)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRegistrosClient_TransportErrorsReachLogger(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	c := NewRegistrosClient(Options{BaseURL: url, Timeout: 200 * time.Millisecond, Logger: zap.New(core)})
	_, err := c.CreateHistorial(context.Background(), &HistorialDTO{Entidad: "usuario", IDEntidad: 1, IDEstadoNuevo: 2})
	require.ErrorIs(t, err, errs.ErrUpstream)

	fromResty := logs.FilterMessageSnippet("dial tcp").FilterField(zap.String("remote_service", "registros"))
	assert.NotZero(t, fromResty.Len())
}
