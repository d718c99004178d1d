package service

import (
	"context"
	"io"
	"sort"
	"time"

	"safe-rescue/safe-common/client"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-perfiles/internal/domain"
)

// memTable in-memory stand-in for one table
type memTable[T any] struct {
	entity string
	rows   map[int64]T
	next   int64
	getID  func(*T) int64
	setID  func(*T, int64)
	inUse  map[int64]bool
	// keyed tables (ciudadano, bombero) keep the caller supplied id
	keyed bool
}

func newMemTable[T any](entity string, getID func(*T) int64, setID func(*T, int64)) *memTable[T] {
	return &memTable[T]{entity: entity, rows: map[int64]T{}, getID: getID, setID: setID, inUse: map[int64]bool{}}
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
	if m.keyed {
		id := m.getID(v)
		if _, ok := m.rows[id]; ok {
			return nil, errs.Conflict("%s %d already exists", m.entity, id)
		}
		m.rows[id] = *v
		return v, nil
	}
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
	if m.inUse[id] {
		return errs.Conflict("%s %d is referenced by other records", m.entity, id)
	}
	if _, ok := m.rows[id]; !ok {
		return errs.NotFound(m.entity, id)
	}
	delete(m.rows, id)
	return nil
}

type fakeUsuarioRepo struct{ *memTable[domain.Usuario] }

func (f *fakeUsuarioRepo) Create(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error) {
	for _, row := range f.rows {
		if row.Correo == u.Correo || row.Run == u.Run {
			return nil, errs.Conflict("usuario already exists")
		}
	}
	u.FechaRegistro = time.Now()
	return f.memTable.Create(ctx, u)
}

type fakeEquipoRepo struct{ *memTable[domain.Equipo] }

func (f *fakeEquipoRepo) FindByCompania(ctx context.Context, idCompania int64) ([]domain.Equipo, error) {
	all, _ := f.FindAll(ctx)
	out := []domain.Equipo{}
	for _, e := range all {
		if e.IDCompania == idCompania {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeBomberoRepo struct{ *memTable[domain.Bombero] }

func (f *fakeBomberoRepo) FindByEquipo(ctx context.Context, idEquipo int64) ([]domain.Bombero, error) {
	all, _ := f.FindAll(ctx)
	out := []domain.Bombero{}
	for _, b := range all {
		if b.IDEquipo == idEquipo {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeHistorialRepo struct {
	*memTable[domain.HistorialUsuario]
}

func (f *fakeHistorialRepo) FindByUsuario(ctx context.Context, idUsuario int64) ([]domain.HistorialUsuario, error) {
	all, _ := f.FindAll(ctx)
	out := []domain.HistorialUsuario{}
	for _, h := range all {
		if h.IDUsuario != nil && *h.IDUsuario == idUsuario {
			out = append(out, h)
		}
	}
	return out, nil
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

type fakeRegistros struct {
	estados map[int64]string
	uploads int
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
	return &client.FotoDTO{IDFoto: int64(50 + f.uploads), Tipo: "image/png"}, nil
}

// perfilesFixture every repository plus one tipo de usuario, one compania and two equipos
type perfilesFixture struct {
	tipos      *memTable[domain.TipoUsuario]
	companias  *memTable[domain.Compania]
	equipos    *fakeEquipoRepo
	usuarios   *fakeUsuarioRepo
	ciudadanos *memTable[domain.Ciudadano]
	bomberos   *fakeBomberoRepo
	historial  *fakeHistorialRepo
	geo        *fakeGeo
	registros  *fakeRegistros
}

func newPerfilesFixture() *perfilesFixture {
	f := &perfilesFixture{
		tipos: newMemTable("tipo_usuario",
			func(t *domain.TipoUsuario) int64 { return t.IDTipoUsuario },
			func(t *domain.TipoUsuario, id int64) { t.IDTipoUsuario = id }),
		companias: newMemTable("compania",
			func(c *domain.Compania) int64 { return c.IDCompania },
			func(c *domain.Compania, id int64) { c.IDCompania = id }),
		equipos: &fakeEquipoRepo{newMemTable("equipo",
			func(e *domain.Equipo) int64 { return e.IDEquipo },
			func(e *domain.Equipo, id int64) { e.IDEquipo = id })},
		usuarios: &fakeUsuarioRepo{newMemTable("usuario",
			func(u *domain.Usuario) int64 { return u.IDUsuario },
			func(u *domain.Usuario, id int64) { u.IDUsuario = id })},
		ciudadanos: newMemTable("ciudadano",
			func(c *domain.Ciudadano) int64 { return c.IDUsuario },
			func(c *domain.Ciudadano, id int64) { c.IDUsuario = id }),
		bomberos: &fakeBomberoRepo{newMemTable("bombero",
			func(b *domain.Bombero) int64 { return b.IDUsuario },
			func(b *domain.Bombero, id int64) { b.IDUsuario = id })},
		historial: &fakeHistorialRepo{newMemTable("historial_usuario",
			func(h *domain.HistorialUsuario) int64 { return h.IDHistorial },
			func(h *domain.HistorialUsuario, id int64) { h.IDHistorial = id })},
		geo:       &fakeGeo{direcciones: map[int64]bool{1: true}},
		registros: &fakeRegistros{estados: map[int64]string{1: "Activo", 2: "Suspendido"}},
	}
	f.ciudadanos.keyed = true
	f.bomberos.keyed = true

	ctx := context.Background()
	_, _ = f.tipos.Create(ctx, &domain.TipoUsuario{Nombre: "Ciudadano"})
	_, _ = f.companias.Create(ctx, &domain.Compania{Nombre: "Primera Compañía", IDDireccion: 1})
	_, _ = f.equipos.Create(ctx, &domain.Equipo{Nombre: "Rescate", IDCompania: 1, IDEstado: 1})
	_, _ = f.equipos.Create(ctx, &domain.Equipo{Nombre: "Haz-Mat", IDCompania: 1, IDEstado: 1})
	return f
}

func validUsuario() *domain.Usuario {
	return &domain.Usuario{
		Run:           "12345678",
		Dv:            "5",
		Nombre:        "Ana",
		APaterno:      "Rojas",
		Telefono:      "912345678",
		Correo:        "ana@mail.cl",
		Contrasenia:   "secreta123",
		IDTipoUsuario: 1,
		IDEstado:      1,
	}
}

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }
