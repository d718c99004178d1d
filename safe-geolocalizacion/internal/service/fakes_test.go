package service

import (
	"context"
	"sort"

	"safe-rescue/safe-common/errs"
	"safe-rescue/safe-geolocalizacion/internal/domain"
)

// memTable in-memory stand-in for one table
type memTable[T any] struct {
	entity string
	rows   map[int64]T
	next   int64
	getID  func(*T) int64
	setID  func(*T, int64)
	// inUse marks ids referenced from another table
	inUse map[int64]bool
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

type fakePaisRepo struct{ *memTable[domain.Pais] }

func newFakePaisRepo() *fakePaisRepo {
	return &fakePaisRepo{newMemTable("pais",
		func(p *domain.Pais) int64 { return p.IDPais },
		func(p *domain.Pais, id int64) { p.IDPais = id })}
}

type fakeRegionRepo struct{ *memTable[domain.Region] }

func newFakeRegionRepo() *fakeRegionRepo {
	return &fakeRegionRepo{newMemTable("region",
		func(r *domain.Region) int64 { return r.IDRegion },
		func(r *domain.Region, id int64) { r.IDRegion = id })}
}

func (f *fakeRegionRepo) FindByPais(ctx context.Context, idPais int64) ([]domain.Region, error) {
	all, _ := f.FindAll(ctx)
	out := []domain.Region{}
	for _, r := range all {
		if r.IDPais == idPais {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeComunaRepo struct{ *memTable[domain.Comuna] }

func newFakeComunaRepo() *fakeComunaRepo {
	return &fakeComunaRepo{newMemTable("comuna",
		func(c *domain.Comuna) int64 { return c.IDComuna },
		func(c *domain.Comuna, id int64) { c.IDComuna = id })}
}

func (f *fakeComunaRepo) FindByRegion(ctx context.Context, idRegion int64) ([]domain.Comuna, error) {
	all, _ := f.FindAll(ctx)
	out := []domain.Comuna{}
	for _, c := range all {
		if c.IDRegion == idRegion {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeCoordenadasRepo struct{ *memTable[domain.Coordenadas] }

func newFakeCoordenadasRepo() *fakeCoordenadasRepo {
	return &fakeCoordenadasRepo{newMemTable("coordenadas",
		func(c *domain.Coordenadas) int64 { return c.IDGeolocalizacion },
		func(c *domain.Coordenadas, id int64) { c.IDGeolocalizacion = id })}
}

type fakeDireccionRepo struct {
	*memTable[domain.Direccion]
	comunas *fakeComunaRepo
}

func newFakeDireccionRepo(comunas *fakeComunaRepo) *fakeDireccionRepo {
	return &fakeDireccionRepo{memTable: newMemTable("direccion",
		func(d *domain.Direccion) int64 { return d.IDDireccion },
		func(d *domain.Direccion, id int64) { d.IDDireccion = id }), comunas: comunas}
}

func (f *fakeDireccionRepo) FindDetalle(ctx context.Context, id int64) (*domain.DireccionDetalle, error) {
	d, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	det := &domain.DireccionDetalle{Direccion: *d}
	if c, err := f.comunas.FindByID(ctx, d.IDComuna); err == nil {
		det.Comuna = c.Nombre
	}
	return det, nil
}

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }
