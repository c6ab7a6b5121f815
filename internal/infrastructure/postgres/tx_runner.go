package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)

// Espera máxima por la transacción completa y por un bloqueo de fila. La espera
// acotada es obligatoria: si la contención no se resuelve dentro del límite se
// devuelve ErrConcurrencyConflict sin escritura parcial.
const (
	txTimeout   = 5 * time.Second
	lockTimeout = "3s"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con los
// repositorios del motor de ventas atados a la tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, fija lock_timeout (espera acotada), ejecuta fn con
// repos atados a la tx y hace Commit o Rollback. Contención no resuelta dentro
// del límite se traduce a domain.ErrConcurrencyConflict; cualquier otro error
// de fn (incluido ErrInsufficientStock) aborta la transacción sin efectos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
) error) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '"+lockTimeout+"'"); err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}

	saleRepo := NewSaleRepository(tx)
	stockRepo := NewStockRepository(tx)

	if err := fn(saleRepo, stockRepo); err != nil {
		if isLockNotAvailable(err) || errors.Is(err, context.DeadlineExceeded) {
			return domain.ErrConcurrencyConflict
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.ErrConcurrencyConflict
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
