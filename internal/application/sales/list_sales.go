package sales

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ListSalesUseCase consultas de solo lectura sobre el historial de ventas.
// Opera sobre el pool (no sobre una tx): cada llamada re-ejecuta la consulta.
type ListSalesUseCase struct {
	saleRepo repository.SaleRepository
}

// NewListSalesUseCase construye el caso de uso.
func NewListSalesUseCase(saleRepo repository.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// List devuelve las ventas ordenadas por fecha descendente. freeText vacío
// lista todo; si no, coincide por subcadena contra nombre del comprador,
// nombre del producto o precio total.
func (uc *ListSalesUseCase) List(ctx context.Context, freeText string) (*dto.SaleListResponse, error) {
	views, err := uc.saleRepo.Search(ctx, repository.SaleFilter{FreeText: freeText})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleListItem, 0, len(views))
	for _, v := range views {
		items = append(items, dto.SaleListItem{
			SaleID:      v.ID,
			BuyerName:   v.BuyerName,
			ProductName: v.ProductName,
			Quantity:    v.Quantity,
			UnitPrice:   v.UnitPrice,
			TotalPrice:  v.TotalPrice,
			SoldAt:      v.SoldAt,
		})
	}
	return &dto.SaleListResponse{Items: items}, nil
}
