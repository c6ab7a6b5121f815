// Package sales contiene la lógica pura del libro de ventas (servicios de dominio).
package sales

import "github.com/shopspring/decimal"

// Total recalcula el precio total de una venta desde la cantidad y el precio
// unitario capturado. La ley: el total nunca se persiste, siempre se deriva.
func Total(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(unitPrice)
}

// ConservationHolds verifica la ley de conservación del inventario:
// StockInicial + Reposiciones = StockActual + SumaVendida.
// El motor de ventas no debe violarla jamás; los tests la usan como oráculo.
func ConservationHolds(initialStock, restocked, currentStock, soldTotal int64) bool {
	return initialStock+restocked == currentStock+soldTotal
}
