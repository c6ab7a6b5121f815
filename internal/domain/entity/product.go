package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Stock es la cantidad disponible
// autoritativa: solo cambia vía el motor de ventas (deducción atómica) o Restock,
// nunca por valores suministrados por el cliente en un update.
type Product struct {
	ID         int64
	Name       string
	Price      decimal.Decimal // precio de venta unitario, >= 0
	Stock      int64           // invariante: >= 0 en todo momento
	CategoryID int64
	ExpiryDate time.Time // fecha calendario (sin hora)
	CreatedAt  time.Time // inmutable, se fija una sola vez
}
