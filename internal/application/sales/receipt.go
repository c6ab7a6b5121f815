package sales

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta ya confirmada.
type ReceiptUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, generator: generator}
}

// GetReceiptPDF devuelve los bytes del PDF; ErrNotFound si la venta no existe.
func (uc *ReceiptUseCase) GetReceiptPDF(ctx context.Context, saleID int64) ([]byte, error) {
	view, err := uc.saleRepo.GetViewByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceiptPDF(ctx, *view)
}
