// Package catalog contiene lógica pura de consulta del catálogo: ventanas de
// vencimiento y normalización de términos de búsqueda.
package catalog

import (
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain"
)

// ExpiryKind discrimina el filtro de vencimiento. Reemplaza el switch de SQL
// armado por strings del esquema anterior: cada variante se traduce a una
// ventana [From, To) que la capa de consulta liga como parámetros.
type ExpiryKind string

const (
	ExpiryToday     ExpiryKind = "today"
	ExpiryThisWeek  ExpiryKind = "week"
	ExpiryThisMonth ExpiryKind = "month"
	ExpiryThisYear  ExpiryKind = "year"
	ExpiryExactDate ExpiryKind = "date"
)

// ExpiryFilter filtro etiquetado de vencimiento. Date solo aplica para ExpiryExactDate.
type ExpiryFilter struct {
	Kind ExpiryKind
	Date time.Time
}

// Window traduce el filtro a una ventana semiabierta [from, to) de fechas
// calendario, calculada en la zona horaria de now. La semana inicia lunes
// (mismo criterio que YEARWEEK modo 1 del esquema original).
func (f ExpiryFilter) Window(now time.Time) (from, to time.Time, err error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch f.Kind {
	case ExpiryToday:
		return day, day.AddDate(0, 0, 1), nil
	case ExpiryThisWeek:
		offset := (int(day.Weekday()) + 6) % 7 // lunes = 0
		monday := day.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 7), nil
	case ExpiryThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first, first.AddDate(0, 1, 0), nil
	case ExpiryThisYear:
		first := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return first, first.AddDate(1, 0, 0), nil
	case ExpiryExactDate:
		if f.Date.IsZero() {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		d := time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), 0, 0, 0, 0, now.Location())
		return d, d.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
}
