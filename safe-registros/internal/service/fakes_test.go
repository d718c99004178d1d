package service

import (
	"context"
	"sort"
	"time"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-registros/internal/domain"
)

type fakeEstadoRepo struct {
	rows  map[int64]domain.Estado
	next  int64
	inUse map[int64]bool
}

func newFakeEstadoRepo(nombres ...string) *fakeEstadoRepo {
	f := &fakeEstadoRepo{rows: map[int64]domain.Estado{}, inUse: map[int64]bool{}}
	for _, n := range nombres {
		_, _ = f.Create(context.Background(), &domain.Estado{Nombre: n})
	}
	return f
}

func (f *fakeEstadoRepo) FindAll(context.Context) ([]domain.Estado, error) {
	out := make([]domain.Estado, 0, len(f.rows))
	for _, e := range f.rows {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDEstado < out[j].IDEstado })
	return out, nil
}

func (f *fakeEstadoRepo) FindByID(_ context.Context, id int64) (*domain.Estado, error) {
	e, ok := f.rows[id]
	if !ok {
		return nil, errs.NotFound("estado", id)
	}
	return &e, nil
}

func (f *fakeEstadoRepo) Create(_ context.Context, e *domain.Estado) (*domain.Estado, error) {
	for _, row := range f.rows {
		if row.Nombre == e.Nombre {
			return nil, errs.Conflict("estado %q already exists", e.Nombre)
		}
	}
	f.next++
	e.IDEstado = f.next
	f.rows[e.IDEstado] = *e
	return e, nil
}

func (f *fakeEstadoRepo) Update(_ context.Context, e *domain.Estado) error {
	if _, ok := f.rows[e.IDEstado]; !ok {
		return errs.NotFound("estado", e.IDEstado)
	}
	f.rows[e.IDEstado] = *e
	return nil
}

func (f *fakeEstadoRepo) Delete(_ context.Context, id int64) error {
	if f.inUse[id] {
		return errs.Conflict("estado %d is referenced by other records", id)
	}
	delete(f.rows, id)
	return nil
}

type fakeHistorialRepo struct {
	rows []domain.Historial
}

func (f *fakeHistorialRepo) FindAll(context.Context) ([]domain.Historial, error) {
	return f.rows, nil
}

func (f *fakeHistorialRepo) FindByID(_ context.Context, id int64) (*domain.Historial, error) {
	for _, h := range f.rows {
		if h.IDHistorial == id {
			return &h, nil
		}
	}
	return nil, errs.NotFound("historial", id)
}

func (f *fakeHistorialRepo) FindByEntidad(_ context.Context, entidad string, idEntidad int64) ([]domain.Historial, error) {
	out := []domain.Historial{}
	for _, h := range f.rows {
		if h.Entidad == entidad && h.IDEntidad == idEntidad {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHistorialRepo) Create(_ context.Context, h *domain.Historial) (*domain.Historial, error) {
	h.IDHistorial = int64(len(f.rows) + 1)
	h.FechaHistorial = time.Date(2024, 1, 1, 0, 0, len(f.rows), 0, time.UTC)
	f.rows = append(f.rows, *h)
	return h, nil
}

type fakeFotoRepo struct {
	rows    map[int64]domain.Foto
	next    int64
	failAdd error
}

func newFakeFotoRepo() *fakeFotoRepo { return &fakeFotoRepo{rows: map[int64]domain.Foto{}} }

func (f *fakeFotoRepo) FindAll(context.Context) ([]domain.Foto, error) {
	out := make([]domain.Foto, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeFotoRepo) FindByID(_ context.Context, id int64) (*domain.Foto, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, errs.NotFound("foto", id)
	}
	return &r, nil
}

func (f *fakeFotoRepo) Create(_ context.Context, r *domain.Foto) (*domain.Foto, error) {
	if f.failAdd != nil {
		return nil, f.failAdd
	}
	f.next++
	r.IDFoto = f.next
	r.FechaSubida = time.Now()
	f.rows[r.IDFoto] = *r
	return r, nil
}

func (f *fakeFotoRepo) Update(_ context.Context, r *domain.Foto) error {
	f.rows[r.IDFoto] = *r
	return nil
}

func (f *fakeFotoRepo) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }
