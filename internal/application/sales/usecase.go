package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// RecordSaleUseCase es el único punto de entrada para vender stock. Garantiza
// que el libro de stock y el log de ventas nunca diverjan: la deducción y el
// asiento se confirman juntos o no se confirma ninguno.
type RecordSaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	log         *logger.Logger
}

// NewRecordSaleUseCase construye el coordinador de ventas.
func NewRecordSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	log *logger.Logger,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

// RecordSale registra la venta de quantity unidades de un producto:
//  1. valida entrada y existencia de comprador y producto (antes de cualquier
//     escritura), capturando el precio unitario en este punto;
//  2. dentro de UNA transacción: deducción condicional atómica del stock
//     (falla con ErrInsufficientStock sin efectos si no alcanza) y anexado de
//     la venta con el precio capturado en el paso 1 — no se relee el producto,
//     así un cambio de precio concurrente no contamina el asiento;
//  3. devuelve la venta materializada con su ID asignado.
//
// Sin reintentos automáticos: ErrInsufficientStock es un resultado de negocio,
// no una falla transitoria.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, buyerID, productID, quantity int64) (*entity.Sale, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if buyerID <= 0 || productID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	exists, err := uc.userRepo.Exists(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrBuyerNotFound
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	// Precio capturado aquí; el asiento usa este valor aunque el producto
	// cambie de precio entre la deducción y el anexado.
	unitPrice := product.Price

	txID := uuid.New().String()
	sale := &entity.Sale{
		UserID:    buyerID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := stockRepo.TryDeduct(ctx, productID, quantity); err != nil {
			return err
		}
		return saleRepo.Append(ctx, sale)
	})
	if err != nil {
		uc.log.Warn().
			Str("tx_id", txID).
			Int64("product_id", productID).
			Int64("quantity", quantity).
			Err(err).
			Msg("venta rechazada")
		return nil, err
	}

	uc.log.Info().
		Str("tx_id", txID).
		Int64("sale_id", sale.ID).
		Int64("product_id", productID).
		Int64("quantity", quantity).
		Str("unit_price", unitPrice.String()).
		Msg("venta registrada")
	return sale, nil
}
