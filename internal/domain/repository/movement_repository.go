package repository

import (
	"context"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

// MovementFilter restringe un listado de movimientos. Campos vacíos no filtran.
// Location coincide con cualquiera de los dos extremos.
type MovementFilter struct {
	ProductID    string
	FromLocation string
	ToLocation   string
	Location     string
}

// MovementRepository define el puerto de persistencia para el libro de movimientos.
// List ordena por timestamp descendente (desempate por movement_id descendente).
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	Update(ctx context.Context, movement *entity.Movement) error
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
}
