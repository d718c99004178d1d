package service

import (
	"context"
	"sort"
	"time"

	"safe-rescue/safe-common/client"
	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-common/events"
	"safe-rescue/safe-comunicacion/internal/domain"
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

type fakeParticipanteRepo struct {
	*memTable[domain.ParticipanteConversacion]
}

func (f *fakeParticipanteRepo) FindByConversacion(ctx context.Context, idConversacion int64) ([]domain.ParticipanteConversacion, error) {
	all, _ := f.FindAll(ctx)
	out := []domain.ParticipanteConversacion{}
	for _, p := range all {
		if p.IDConversacion == idConversacion {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeParticipanteRepo) Exists(_ context.Context, idConversacion, idUsuario int64) (bool, error) {
	for _, p := range f.rows {
		if p.IDConversacion == idConversacion && p.IDUsuario == idUsuario {
			return true, nil
		}
	}
	return false, nil
}

type fakeMensajeRepo struct{ *memTable[domain.Mensaje] }

func (f *fakeMensajeRepo) FindByConversacion(ctx context.Context, idConversacion int64) ([]domain.Mensaje, error) {
	all, _ := f.FindAll(ctx)
	out := []domain.Mensaje{}
	for _, m := range all {
		if m.IDConversacion == idConversacion {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeNotificacionRepo struct {
	*memTable[domain.Notificacion]
}

func (f *fakeNotificacionRepo) Create(ctx context.Context, n *domain.Notificacion) (*domain.Notificacion, error) {
	n.FechaCreacion = time.Now()
	return f.memTable.Create(ctx, n)
}

func (f *fakeNotificacionRepo) FindByReceptor(ctx context.Context, idUsuario int64) ([]domain.Notificacion, error) {
	all, _ := f.FindAll(ctx)
	out := []domain.Notificacion{}
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].IDUsuarioReceptor == idUsuario {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (f *fakeNotificacionRepo) CountUnread(_ context.Context, idUsuario int64) (int64, error) {
	var n int64
	for _, row := range f.rows {
		if row.IDUsuarioReceptor == idUsuario && !row.Leida {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificacionRepo) MarkRead(_ context.Context, id int64) error {
	row, ok := f.rows[id]
	if !ok {
		return errs.NotFound("notificacion", id)
	}
	row.Leida = true
	f.rows[id] = row
	return nil
}

func (f *fakeNotificacionRepo) MarkAllRead(_ context.Context, idUsuario int64) (int64, error) {
	var n int64
	for id, row := range f.rows {
		if row.IDUsuarioReceptor == idUsuario && !row.Leida {
			row.Leida = true
			f.rows[id] = row
			n++
		}
	}
	return n, nil
}

type fakeHistorialRepo struct {
	*memTable[domain.HistorialMensaje]
}

func (f *fakeHistorialRepo) FindByMensaje(ctx context.Context, idMensaje int64) ([]domain.HistorialMensaje, error) {
	all, _ := f.FindAll(ctx)
	out := []domain.HistorialMensaje{}
	for _, h := range all {
		if h.IDMensaje == idMensaje {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakePerfiles struct {
	usuarios map[int64]bool
	err      error
}

func (f *fakePerfiles) GetUsuario(_ context.Context, id int64) (*client.UsuarioDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.usuarios[id] {
		return nil, errs.RemoteNotFound("usuario", id)
	}
	return &client.UsuarioDTO{IDUsuario: id}, nil
}

type fakeRegistros struct {
	estados map[int64]string
}

func (f *fakeRegistros) GetEstado(_ context.Context, id int64) (*client.EstadoDTO, error) {
	nombre, ok := f.estados[id]
	if !ok {
		return nil, errs.RemoteNotFound("estado", id)
	}
	return &client.EstadoDTO{IDEstado: id, Nombre: nombre}, nil
}

type recordingPublisher struct {
	got []events.Event
	err error
}

func (r *recordingPublisher) Publish(_ context.Context, ev events.Event) error {
	r.got = append(r.got, ev)
	return r.err
}

// comunicacionFixture every repository plus one conversacion whose only participant is usuario 5
type comunicacionFixture struct {
	conversaciones *memTable[domain.Conversacion]
	participantes  *fakeParticipanteRepo
	mensajes       *fakeMensajeRepo
	notificaciones *fakeNotificacionRepo
	historial      *fakeHistorialRepo
	perfiles       *fakePerfiles
	registros      *fakeRegistros
}

func newComunicacionFixture() *comunicacionFixture {
	f := &comunicacionFixture{
		conversaciones: newMemTable("conversacion",
			func(c *domain.Conversacion) int64 { return c.IDConversacion },
			func(c *domain.Conversacion, id int64) { c.IDConversacion = id }),
		participantes: &fakeParticipanteRepo{newMemTable("participante_conversacion",
			func(p *domain.ParticipanteConversacion) int64 { return p.IDParticipanteConversacion },
			func(p *domain.ParticipanteConversacion, id int64) { p.IDParticipanteConversacion = id })},
		mensajes: &fakeMensajeRepo{newMemTable("mensaje",
			func(m *domain.Mensaje) int64 { return m.IDMensaje },
			func(m *domain.Mensaje, id int64) { m.IDMensaje = id })},
		notificaciones: &fakeNotificacionRepo{newMemTable("notificacion",
			func(n *domain.Notificacion) int64 { return n.IDNotificacion },
			func(n *domain.Notificacion, id int64) { n.IDNotificacion = id })},
		historial: &fakeHistorialRepo{newMemTable("historial_mensaje",
			func(h *domain.HistorialMensaje) int64 { return h.IDHistorial },
			func(h *domain.HistorialMensaje, id int64) { h.IDHistorial = id })},
		perfiles:  &fakePerfiles{usuarios: map[int64]bool{5: true, 6: true, 7: true}},
		registros: &fakeRegistros{estados: map[int64]string{1: "Enviado", 2: "Leído"}},
	}
	ctx := context.Background()
	_, _ = f.conversaciones.Create(ctx, &domain.Conversacion{Tipo: "incidente", Nombre: "Incendio Maipú"})
	_, _ = f.participantes.Create(ctx, &domain.ParticipanteConversacion{IDConversacion: 1, IDUsuario: 5})
	return f
}

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }
