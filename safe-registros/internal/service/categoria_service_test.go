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

// countingCategoriaRepo in-memory categoria table that counts writes
type countingCategoriaRepo struct {
	rows    map[int64]domain.Categoria
	next    int64
	creates int
}

func (f *countingCategoriaRepo) FindAll(context.Context) ([]domain.Categoria, error) {
	out := []domain.Categoria{}
	for id := int64(1); id <= f.next; id++ {
		if c, ok := f.rows[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *countingCategoriaRepo) FindByID(_ context.Context, id int64) (*domain.Categoria, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, errs.NotFound("categoria", id)
	}
	return &c, nil
}

func (f *countingCategoriaRepo) Create(_ context.Context, c *domain.Categoria) (*domain.Categoria, error) {
	f.creates++
	f.next++
	c.IDCategoria = f.next
	f.rows[c.IDCategoria] = *c
	return c, nil
}

func (f *countingCategoriaRepo) Update(_ context.Context, c *domain.Categoria) error {
	if _, ok := f.rows[c.IDCategoria]; !ok {
		return errs.NotFound("categoria", c.IDCategoria)
	}
	f.rows[c.IDCategoria] = *c
	return nil
}

func (f *countingCategoriaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return errs.NotFound("categoria", id)
	}
	delete(f.rows, id)
	return nil
}

func TestCategoriaSave_NombreBoundary(t *testing.T) {
	repo := &countingCategoriaRepo{rows: map[int64]domain.Categoria{}}
	svc := NewCategoriaService(repo, zap.NewNop())
	ctx := context.Background()

	c, err := svc.Save(ctx, &domain.Categoria{Nombre: strings.Repeat("a", 50)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.IDCategoria)

	_, err = svc.Save(ctx, &domain.Categoria{Nombre: strings.Repeat("a", 51)})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "nombre must not exceed 50 characters")
	assert.Equal(t, 1, repo.creates)
}

func TestCategoriaSave_NilNeverReachesRepository(t *testing.T) {
	repo := &countingCategoriaRepo{rows: map[int64]domain.Categoria{}}
	svc := NewCategoriaService(repo, zap.NewNop())

	_, err := svc.Save(context.Background(), nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Zero(t, repo.creates)
}

func TestCategoriaUpdate_OnlyPresentFields(t *testing.T) {
	repo := &countingCategoriaRepo{rows: map[int64]domain.Categoria{}}
	svc := NewCategoriaService(repo, zap.NewNop())
	ctx := context.Background()
	_, err := svc.Save(ctx, &domain.Categoria{Nombre: "Rescate", Descripcion: "personas atrapadas"})
	require.NoError(t, err)

	nombre := "Rescate vehicular"
	c, err := svc.Update(ctx, 1, &domain.CategoriaPatch{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Rescate vehicular", c.Nombre)
	assert.Equal(t, "personas atrapadas", c.Descripcion)

	_, err = svc.Update(ctx, 7, &domain.CategoriaPatch{})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
