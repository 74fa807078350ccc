package repository

import (
	"context"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// No hay borrado: los productos quedan referenciados por el libro de movimientos.
type ProductRepository interface {
	// Create falla con domain.ErrDuplicate si el ID ya existe.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update falla con domain.ErrNotFound si no existe.
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	Count(ctx context.Context) (int, error)
}
