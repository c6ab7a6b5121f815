package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un asiento inmutable del libro de ventas: se crea una sola vez por el
// coordinador y nunca se modifica ni se elimina. UnitPrice se captura al momento
// de la venta (no se relee del producto) para preservar el precio histórico.
type Sale struct {
	ID        int64 // asignado por el almacén, monótonamente creciente
	UserID    int64 // comprador
	ProductID int64
	Quantity  int64           // > 0
	UnitPrice decimal.Decimal // precio unitario al momento de la venta
	SoldAt    time.Time       // fijado en la creación, inmutable
}

// Total recalcula el precio total desde cantidad y precio unitario almacenados.
// Nunca se persiste: es un valor derivable.
func (s *Sale) Total() decimal.Decimal {
	return decimal.NewFromInt(s.Quantity).Mul(s.UnitPrice)
}
