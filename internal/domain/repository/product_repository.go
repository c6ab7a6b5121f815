package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ProductView proyección de lectura de un producto con el nombre de su categoría
// (las listas y búsquedas del catálogo siempre la incluyen).
type ProductView struct {
	Product      entity.Product
	CategoryName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update nunca toca Stock: la cantidad disponible solo la muta StockRepository.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]ProductView, error)
	// Search busca por subcadena contra nombre, id y nombre de categoría
	// (needle ya normalizado; consulta parametrizada).
	Search(ctx context.Context, needle string) ([]ProductView, error)
	// FilterByExpiry lista productos cuya fecha de vencimiento cae en [from, to).
	FilterByExpiry(ctx context.Context, from, to time.Time) ([]ProductView, error)
}
