package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Exists verifica la existencia del comprador sin cargar la entidad.
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*entity.User, error)
}
