package entity

import "time"

// User representa un operador del sistema; también actúa como comprador en las ventas.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // hash bcrypt, nunca en plano después de persistir
	CreatedAt    time.Time
}

// FullName devuelve el nombre completo (usado en listados y búsqueda de ventas).
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
