package entity

import "time"

// Category agrupa productos. No puede eliminarse mientras existan productos
// que la referencien (FK RESTRICT; el caso de uso devuelve ErrConflict).
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
