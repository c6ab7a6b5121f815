package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/catalog"
)

// now fijo para ventanas reproducibles: miércoles 15 de abril de 2026.
var testNow = time.Date(2026, time.April, 15, 13, 45, 12, 0, time.UTC)

func TestWindow_Hoy(t *testing.T) {
	from, to, err := catalog.ExpiryFilter{Kind: catalog.ExpiryToday}.Window(testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.April, 16, 0, 0, 0, 0, time.UTC), to,
		"la ventana es semiabierta: [hoy 00:00, mañana 00:00)")
}

// TestWindow_SemanaIniciaLunes: el 15 de abril de 2026 es miércoles; la semana
// debe ir del lunes 13 al lunes 20 (exclusivo).
func TestWindow_SemanaIniciaLunes(t *testing.T) {
	from, to, err := catalog.ExpiryFilter{Kind: catalog.ExpiryThisWeek}.Window(testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.April, 13, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC), to)
}

// TestWindow_SemanaDesdeDomingo: en Go el domingo es Weekday 0; la semana de un
// domingo debe ser la que empezó el lunes anterior, no la siguiente.
func TestWindow_SemanaDesdeDomingo(t *testing.T) {
	sunday := time.Date(2026, time.April, 19, 8, 0, 0, 0, time.UTC)
	from, to, err := catalog.ExpiryFilter{Kind: catalog.ExpiryThisWeek}.Window(sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.April, 13, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC), to)
}

func TestWindow_Mes(t *testing.T) {
	from, to, err := catalog.ExpiryFilter{Kind: catalog.ExpiryThisMonth}.Window(testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestWindow_Anio(t *testing.T) {
	from, to, err := catalog.ExpiryFilter{Kind: catalog.ExpiryThisYear}.Window(testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestWindow_FechaExacta(t *testing.T) {
	date := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	from, to, err := catalog.ExpiryFilter{Kind: catalog.ExpiryExactDate, Date: date}.Window(testNow)
	require.NoError(t, err)
	assert.Equal(t, date, from)
	assert.Equal(t, date.AddDate(0, 0, 1), to)
}

func TestWindow_FechaExactaSinFecha(t *testing.T) {
	_, _, err := catalog.ExpiryFilter{Kind: catalog.ExpiryExactDate}.Window(testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWindow_VarianteDesconocida(t *testing.T) {
	_, _, err := catalog.ExpiryFilter{Kind: "mañana"}.Window(testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una variante no reconocida nunca debe traducirse a SQL")
}
