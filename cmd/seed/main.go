// seed crea el esquema de la base de datos y carga datos de demostración.
//
// Uso: go run ./cmd/seed
// Lee la configuración de conexión de las mismas variables de entorno que la API
// (DATABASE_URL o DB_HOST/DB_PORT/...). Idempotente: el esquema usa IF NOT EXISTS
// y los datos demo solo se insertan si las tablas están vacías.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Ventas-api/pkg/config"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS unaccent;

CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
    stock       BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
    category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
    expiry_date DATE NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_expiry   ON products(expiry_date);

-- El total de una venta nunca se almacena: se deriva de quantity * unit_price.
CREATE TABLE IF NOT EXISTS sales (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT NOT NULL REFERENCES users(id),
    product_id BIGINT NOT NULL REFERENCES products(id),
    quantity   BIGINT NOT NULL CHECK (quantity > 0),
    unit_price NUMERIC(12,2) NOT NULL CHECK (unit_price >= 0),
    sold_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_sales_sold_at ON sales(sold_at DESC);
CREATE INDEX IF NOT EXISTS idx_sales_product ON sales(product_id);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "Crear esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Esquema creado")

	var count int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM categories`).Scan(&count); err != nil {
		fmt.Fprintf(os.Stderr, "Verificar datos existentes: %v\n", err)
		os.Exit(1)
	}
	if count > 0 {
		fmt.Println("Datos demo omitidos: ya existen categorías")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar hash: %v\n", err)
		os.Exit(1)
	}

	demo := []string{
		fmt.Sprintf(`INSERT INTO users (first_name, last_name, email, password_hash)
			VALUES ('Admin', 'Demo', 'admin@demo.local', '%s')`, string(hash)),
		`INSERT INTO categories (name) VALUES ('Lácteos'), ('Panadería'), ('Bebidas')`,
		`INSERT INTO products (name, price, stock, category_id, expiry_date) VALUES
			('Leche entera 1L',  3500.00, 40, 1, CURRENT_DATE + INTERVAL '7 days'),
			('Queso campesino',  8900.00, 15, 1, CURRENT_DATE + INTERVAL '20 days'),
			('Pan tajado',       5200.00, 25, 2, CURRENT_DATE + INTERVAL '3 days'),
			('Café molido 500g', 18500.00, 30, 3, CURRENT_DATE + INTERVAL '180 days'),
			('Jugo de naranja',  4200.00, 18, 3, CURRENT_DATE + INTERVAL '10 days')`,
	}
	for _, stmt := range demo {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "Insertar datos demo: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Println("Datos demo insertados: 1 usuario (admin@demo.local / admin123), 3 categorías, 5 productos")
}
