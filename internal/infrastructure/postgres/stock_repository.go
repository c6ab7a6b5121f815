package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo libro de stock sobre PostgreSQL: la cantidad vive en la columna
// stock de products. Usable con pool o tx (Querier).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetQuantity obtiene la cantidad disponible de un producto.
func (r *StockRepo) GetQuantity(ctx context.Context, productID int64) (int64, error) {
	var quantity int64
	err := r.q.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1`, productID).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrProductNotFound
		}
		return 0, fmt.Errorf("get stock: %w", err)
	}
	return quantity, nil
}

// TryDeduct verifica y descuenta en UN solo UPDATE condicional: el predicado
// stock >= amount se evalúa y aplica del lado del servidor bajo el bloqueo de
// fila, así dos ventas concurrentes del mismo producto se serializan y el stock
// jamás queda negativo. RowsAffected == 0 con fila existente = stock insuficiente.
func (r *StockRepo) TryDeduct(ctx context.Context, productID, amount int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		productID, amount,
	)
	if err != nil {
		return fmt.Errorf("deduct stock: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}
	return domain.ErrInsufficientStock
}

// Restock suma unidades al stock (reposición manual).
func (r *StockRepo) Restock(ctx context.Context, productID, amount int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock + $2 WHERE id = $1`,
		productID, amount,
	)
	if err != nil {
		return fmt.Errorf("restock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
