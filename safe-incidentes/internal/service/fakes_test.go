package service

import (
	"context"
	"io"
	"sort"
	"time"

	"safe-rescue/safe-common/client"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-incidentes/internal/domain"

	"go.uber.org/zap"
)

// memTable in-memory stand-in for one table
type memTable[T any] struct {
	entity string
	rows   map[int64]T
	next   int64
	getID  func(*T) int64
	setID  func(*T, int64)
}

func newMemTable[T any](entity string, getID func(*T) int64, setID func(*T, int64)) *memTable[T] {
	return &memTable[T]{entity: entity, rows: map[int64]T{}, getID: getID, setID: setID}
}

func (m *memTable[T]) FindAll(context.Context) ([]T, error) {
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.rows[id])
	}
	return out, nil
}

func (m *memTable[T]) FindByID(_ context.Context, id int64) (*T, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, errs.NotFound(m.entity, id)
	}
	return &row, nil
}

func (m *memTable[T]) Create(_ context.Context, v *T) (*T, error) {
	m.next++
	m.setID(v, m.next)
	m.rows[m.next] = *v
	return v, nil
}

func (m *memTable[T]) Update(_ context.Context, v *T) error {
	id := m.getID(v)
	if _, ok := m.rows[id]; !ok {
		return errs.NotFound(m.entity, id)
	}
	m.rows[id] = *v
	return nil
}

func (m *memTable[T]) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return errs.NotFound(m.entity, id)
	}
	delete(m.rows, id)
	return nil
}

type fakeIncidenteRepo struct {
	*memTable[domain.Incidente]
}

func (f *fakeIncidenteRepo) Create(ctx context.Context, i *domain.Incidente) (*domain.Incidente, error) {
	i.FechaRegistro = time.Now()
	return f.memTable.Create(ctx, i)
}

func (f *fakeIncidenteRepo) FindByCiudadano(ctx context.Context, idCiudadano int64) ([]domain.Incidente, error) {
	all, _ := f.FindAll(ctx)
	out := []domain.Incidente{}
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].IDCiudadano == idCiudadano {
			out = append(out, all[i])
		}
	}
	return out, nil
}

type fakePerfiles struct {
	usuarios   map[int64]bool
	ciudadanos map[int64]bool
}

func (f *fakePerfiles) GetUsuario(_ context.Context, id int64) (*client.UsuarioDTO, error) {
	if !f.usuarios[id] {
		return nil, errs.RemoteNotFound("usuario", id)
	}
	return &client.UsuarioDTO{IDUsuario: id}, nil
}

func (f *fakePerfiles) GetCiudadano(_ context.Context, id int64) (*client.CiudadanoDTO, error) {
	if !f.ciudadanos[id] {
		return nil, errs.RemoteNotFound("ciudadano", id)
	}
	return &client.CiudadanoDTO{IDUsuario: id}, nil
}

type fakeRegistros struct {
	estados      map[int64]string
	uploads      int
	historial    []client.HistorialDTO
	historialErr error
}

func (f *fakeRegistros) GetEstado(_ context.Context, id int64) (*client.EstadoDTO, error) {
	nombre, ok := f.estados[id]
	if !ok {
		return nil, errs.RemoteNotFound("estado", id)
	}
	return &client.EstadoDTO{IDEstado: id, Nombre: nombre}, nil
}

func (f *fakeRegistros) UploadFoto(_ context.Context, _ string, r io.Reader) (*client.FotoDTO, error) {
	if _, err := io.ReadAll(r); err != nil {
		return nil, err
	}
	f.uploads++
	return &client.FotoDTO{IDFoto: int64(70 + f.uploads), Tipo: "image/jpeg"}, nil
}

func (f *fakeRegistros) CreateHistorial(_ context.Context, h *client.HistorialDTO) (*client.HistorialDTO, error) {
	if f.historialErr != nil {
		return nil, f.historialErr
	}
	f.historial = append(f.historial, *h)
	out := *h
	out.IDHistorial = int64(len(f.historial))
	return &out, nil
}

type fakeGeo struct {
	direcciones map[int64]bool
	saved       []client.DireccionDTO
	saveErr     error
}

func (f *fakeGeo) GetDireccion(_ context.Context, id int64) (*client.DireccionDTO, error) {
	if !f.direcciones[id] {
		return nil, errs.RemoteNotFound("direccion", id)
	}
	return &client.DireccionDTO{IDDireccion: id}, nil
}

func (f *fakeGeo) SaveDireccion(_ context.Context, d *client.DireccionDTO) (*client.DireccionDTO, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	out := *d
	out.IDDireccion = int64(100 + len(f.saved))
	f.saved = append(f.saved, out)
	f.direcciones[out.IDDireccion] = true
	return &out, nil
}

// incidentesFixture two tipos, ciudadano 4, responder 12, estados 1 and 2, direccion 10
type incidentesFixture struct {
	tipos      *memTable[domain.TipoIncidente]
	incidentes *fakeIncidenteRepo
	perfiles   *fakePerfiles
	registros  *fakeRegistros
	geo        *fakeGeo
}

func newIncidentesFixture() *incidentesFixture {
	f := &incidentesFixture{
		tipos: newMemTable("tipo_incidente",
			func(t *domain.TipoIncidente) int64 { return t.IDTipoIncidente },
			func(t *domain.TipoIncidente, id int64) { t.IDTipoIncidente = id }),
		incidentes: &fakeIncidenteRepo{newMemTable("incidente",
			func(i *domain.Incidente) int64 { return i.IDIncidente },
			func(i *domain.Incidente, id int64) { i.IDIncidente = id })},
		perfiles:  &fakePerfiles{usuarios: map[int64]bool{4: true, 12: true, 13: true}, ciudadanos: map[int64]bool{4: true}},
		registros: &fakeRegistros{estados: map[int64]string{1: "Reportado", 2: "En curso"}},
		geo:       &fakeGeo{direcciones: map[int64]bool{10: true}},
	}
	ctx := context.Background()
	_, _ = f.tipos.Create(ctx, &domain.TipoIncidente{Nombre: "Incendio"})
	_, _ = f.tipos.Create(ctx, &domain.TipoIncidente{Nombre: "Rescate"})
	return f
}

func (f *incidentesFixture) service() *IncidenteService {
	return NewIncidenteService(f.incidentes, f.tipos, f.perfiles, f.registros, f.geo, zap.NewNop())
}

func validIncidente() *domain.Incidente {
	return &domain.Incidente{
		Titulo:          "Incendio en cocina",
		Detalle:         "Humo saliendo de la ventana del segundo piso",
		IDTipoIncidente: 1,
		IDCiudadano:     4,
		IDEstado:        1,
		IDDireccion:     10,
	}
}
