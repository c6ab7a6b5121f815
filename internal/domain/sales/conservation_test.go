package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ventas-api/internal/domain/sales"
)

func TestTotal(t *testing.T) {
	total := sales.Total(3, decimal.NewFromFloat(3500.50))
	assert.True(t, decimal.NewFromFloat(10501.50).Equal(total))

	assert.True(t, decimal.Zero.Equal(sales.Total(0, decimal.NewFromFloat(99))))
}

// TestTotal_SinErroresDeFlotante: decimal evita los errores de redondeo binario
// que tendría float64 (0.1*3 != 0.3).
func TestTotal_SinErroresDeFlotante(t *testing.T) {
	price, _ := decimal.NewFromString("0.10")
	assert.Equal(t, "0.30", sales.Total(3, price).StringFixed(2))
}

func TestConservationHolds(t *testing.T) {
	assert.True(t, sales.ConservationHolds(20, 0, 0, 20))
	assert.True(t, sales.ConservationHolds(20, 5, 10, 15))
	assert.False(t, sales.ConservationHolds(20, 0, 5, 20), "unidades creadas de la nada")
	assert.False(t, sales.ConservationHolds(20, 0, 0, 19), "unidades perdidas")
}
