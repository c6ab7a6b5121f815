package repository

import "context"

// StockRepository es el libro de stock: la fuente autoritativa de "cuántas
// unidades quedan" por producto. La única mutación permitida durante una venta
// es TryDeduct, que verifica y descuenta en un solo paso indivisible.
type StockRepository interface {
	// GetQuantity devuelve la cantidad disponible; ErrProductNotFound si no existe.
	GetQuantity(ctx context.Context, productID int64) (int64, error)
	// TryDeduct verifica quantity >= amount y descuenta en la misma operación
	// atómica (check-and-apply del lado del servidor). Devuelve
	// ErrInsufficientStock sin efectos si no alcanza, ErrProductNotFound si el
	// producto no existe.
	TryDeduct(ctx context.Context, productID, amount int64) error
	// Restock suma unidades (reposición manual).
	Restock(ctx context.Context, productID, amount int64) error
}
