package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock aquí es el stock
// inicial; después de la creación solo cambia vía ventas o reposiciones.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Price      decimal.Decimal `json:"price"`
	Stock      int64           `json:"stock" validate:"min=0"`
	CategoryID int64           `json:"category_id" validate:"required"`
	ExpiryDate string          `json:"expiry_date" validate:"required"` // YYYY-MM-DD
}

// UpdateProductRequest entrada para actualizar un producto. Sin Stock: la
// cantidad disponible nunca se acepta del cliente.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price      *decimal.Decimal `json:"price"`
	CategoryID *int64           `json:"category_id"`
	ExpiryDate *string          `json:"expiry_date"` // YYYY-MM-DD
}

// RestockRequest entrada para una reposición manual de stock.
type RestockRequest struct {
	Quantity int64 `json:"quantity" validate:"required,min=1"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category,omitempty"`
	ExpiryDate   string          `json:"expiry_date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
