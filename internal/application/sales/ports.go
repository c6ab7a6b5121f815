package sales

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios del motor de ventas atados a esa tx. La deducción de stock y el
// anexado de la venta dentro de fn comparten destino: Commit si fn retorna nil,
// Rollback en cualquier otro caso (error, cancelación del ctx, pánico).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// ReceiptGenerator renderiza el comprobante PDF de una venta.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale repository.SaleView) ([]byte, error)
}
