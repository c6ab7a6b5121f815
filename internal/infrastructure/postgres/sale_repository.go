package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo log de ventas de solo-anexado sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Append persiste la venta en un solo INSERT; la BD asigna el ID (BIGSERIAL,
// monótono) y el timestamp, que se devuelven sobre la entidad. El registro es
// durable completo o ausente: no hay escritura parcial posible.
func (r *SaleRepo) Append(ctx context.Context, sale *entity.Sale) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO sales (user_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, sold_at`,
		sale.UserID, sale.ProductID, sale.Quantity, sale.UnitPrice,
	).Scan(&sale.ID, &sale.SoldAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, `
		SELECT id, user_id, product_id, quantity, unit_price, sold_at
		FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.SoldAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// saleViewColumns proyección común: el total siempre se recalcula como
// quantity * unit_price al leer, nunca se persiste.
const saleViewColumns = `
	s.id,
	u.first_name || ' ' || u.last_name AS buyer_name,
	p.name AS product_name,
	s.quantity,
	s.unit_price,
	s.quantity * s.unit_price AS total_price,
	s.sold_at
	FROM sales s
	JOIN users u ON u.id = s.user_id
	JOIN products p ON p.id = s.product_id`

// GetViewByID resuelve la venta con comprador y producto (para el comprobante).
func (r *SaleRepo) GetViewByID(ctx context.Context, id int64) (*repository.SaleView, error) {
	var v repository.SaleView
	err := r.q.QueryRow(ctx, `SELECT `+saleViewColumns+` WHERE s.id = $1`, id).Scan(
		&v.ID, &v.BuyerName, &v.ProductName, &v.Quantity, &v.UnitPrice, &v.TotalPrice, &v.SoldAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale view: %w", err)
	}
	return &v, nil
}

// Search lista ventas por fecha descendente. El texto libre se liga como
// parámetro y coincide por subcadena contra nombre del comprador, nombre del
// producto o el total calculado; nunca se arma SQL por concatenación.
func (r *SaleRepo) Search(ctx context.Context, filter repository.SaleFilter) ([]repository.SaleView, error) {
	query := `SELECT ` + saleViewColumns + `
		WHERE $1 = ''
		   OR u.first_name || ' ' || u.last_name ILIKE '%' || $1 || '%'
		   OR p.name ILIKE '%' || $1 || '%'
		   OR (s.quantity * s.unit_price)::text LIKE '%' || $1 || '%'
		ORDER BY s.sold_at DESC, s.id DESC`
	rows, err := r.q.Query(ctx, query, filter.FreeText)
	if err != nil {
		return nil, fmt.Errorf("search sales: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleView
	for rows.Next() {
		var v repository.SaleView
		if err := rows.Scan(&v.ID, &v.BuyerName, &v.ProductName, &v.Quantity, &v.UnitPrice, &v.TotalPrice, &v.SoldAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
