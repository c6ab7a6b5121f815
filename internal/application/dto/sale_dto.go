package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	UserID    int64 `json:"user_id" validate:"required"`
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int64 `json:"quantity" validate:"required,min=1"`
}

// SaleResponse venta materializada tras el commit del coordinador.
type SaleResponse struct {
	SaleID    int64           `json:"sale_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SoldAt    time.Time       `json:"sold_at"`
}

// SaleListItem fila del historial de ventas. TotalPrice siempre se recalcula
// como quantity × unit_price al leer.
type SaleListItem struct {
	SaleID      int64           `json:"sale_id"`
	BuyerName   string          `json:"buyer_name"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	SoldAt      time.Time       `json:"sold_at"`
}

// SaleListResponse historial de ventas ordenado por fecha descendente.
type SaleListResponse struct {
	Items []SaleListItem `json:"items"`
}
