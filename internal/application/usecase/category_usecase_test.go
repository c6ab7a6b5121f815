package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// fakeCategoryRepo repo en memoria. referenced marca categorías con productos
// asociados: Delete sobre ellas devuelve ErrConflict, como el FK RESTRICT.
type fakeCategoryRepo struct {
	byID       map[int64]*entity.Category
	nextID     int64
	referenced map[int64]bool
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		byID:       make(map[int64]*entity.Category),
		nextID:     1,
		referenced: make(map[int64]bool),
	}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, existing := range r.byID {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	c.ID = r.nextID
	r.nextID++
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) List(context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	if r.referenced[id] {
		return domain.ErrConflict
	}
	delete(r.byID, id)
	return nil
}

func TestCategory_CrearYListar(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Lácteos"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestCategory_NombreDuplicado(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Lácteos"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Lácteos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategory_NombreVacio(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCategory_EliminarConProductos: política explícita de borrado — una
// categoría referenciada por productos no puede eliminarse.
func TestCategory_EliminarConProductos(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	repo.referenced[out.ID] = true

	err = uc.Delete(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	still, _ := uc.GetByID(context.Background(), out.ID)
	assert.NotNil(t, still, "la categoría debe seguir existiendo tras el rechazo")
}

func TestCategory_EliminarInexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	err := uc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
