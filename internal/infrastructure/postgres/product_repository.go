package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). No toca la columna stock en Update: esa es del
// libro de stock.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con su stock inicial; asigna ID y CreatedAt.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO products (name, price, stock, category_id, expiry_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		product.Name, product.Price, product.Stock, product.CategoryID, product.ExpiryDate,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `
		SELECT id, name, price, stock, category_id, expiry_date, created_at
		FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CategoryID, &p.ExpiryDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza nombre, precio, categoría y vencimiento. Stock y CreatedAt
// quedan fuera a propósito.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		UPDATE products SET name = $2, price = $3, category_id = $4, expiry_date = $5
		WHERE id = $1`,
		product.ID, product.Name, product.Price, product.CategoryID, product.ExpiryDate,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Falla con ErrConflict si tiene ventas
// registradas (el historial es inmutable).
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

const productViewColumns = `
	p.id, p.name, p.price, p.stock, p.category_id, p.expiry_date, p.created_at,
	c.name AS category
	FROM products p
	JOIN categories c ON c.id = p.category_id`

// List lista productos con su categoría, paginado por fecha de creación descendente.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]repository.ProductView, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productViewColumns+`
		ORDER BY p.created_at DESC, p.id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProductViews(rows)
}

// Search busca por subcadena contra nombre (sin acentos), id y nombre de la
// categoría; needle viene ya normalizado y se liga como parámetro.
func (r *ProductRepo) Search(ctx context.Context, needle string) ([]repository.ProductView, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productViewColumns+`
		WHERE unaccent(p.name) ILIKE '%' || $1 || '%'
		   OR p.id::text LIKE '%' || $1 || '%'
		   OR unaccent(c.name) ILIKE '%' || $1 || '%'
		ORDER BY p.id`, needle)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return scanProductViews(rows)
}

// FilterByExpiry lista productos con vencimiento en [from, to).
func (r *ProductRepo) FilterByExpiry(ctx context.Context, from, to time.Time) ([]repository.ProductView, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productViewColumns+`
		WHERE p.expiry_date >= $1 AND p.expiry_date < $2
		ORDER BY p.expiry_date, p.id`, from, to)
	if err != nil {
		return nil, fmt.Errorf("filter products by expiry: %w", err)
	}
	return scanProductViews(rows)
}

func scanProductViews(rows pgx.Rows) ([]repository.ProductView, error) {
	defer rows.Close()
	var list []repository.ProductView
	for rows.Next() {
		var v repository.ProductView
		if err := rows.Scan(
			&v.Product.ID, &v.Product.Name, &v.Product.Price, &v.Product.Stock,
			&v.Product.CategoryID, &v.Product.ExpiryDate, &v.Product.CreatedAt,
			&v.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
