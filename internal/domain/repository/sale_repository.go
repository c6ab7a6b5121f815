package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// SaleFilter especificación de búsqueda sobre el historial de ventas.
// FreeText vacío significa "todas las ventas".
type SaleFilter struct {
	// FreeText coincide por subcadena contra nombre del comprador, nombre del
	// producto o el precio total calculado.
	FreeText string
}

// SaleView proyección de lectura de una venta con comprador y producto resueltos.
// TotalPrice se recalcula desde quantity y unit_price al leer; nunca se persiste.
type SaleView struct {
	ID          int64
	BuyerName   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	SoldAt      time.Time
}

// SaleRepository es el almacén de ventas: un log inmutable de solo-anexado.
type SaleRepository interface {
	// Append persiste la venta y asigna ID (monótonamente creciente) y SoldAt
	// sobre la entidad. Todo-o-nada: nunca escribe un registro parcial.
	Append(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	// GetViewByID resuelve la venta con comprador y producto (para el comprobante).
	GetViewByID(ctx context.Context, id int64) (*SaleView, error)
	// Search re-ejecuta la consulta en cada llamada (secuencia finita y
	// reiniciable, sin cursores retenidos), ordenada por SoldAt descendente.
	Search(ctx context.Context, filter SaleFilter) ([]SaleView, error)
}
