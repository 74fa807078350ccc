package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del libro de movimientos.
type MovementRepo struct {
	s *Store
}

// Create agrega un movimiento. domain.ErrDuplicate si el ID ya existe.
func (r *MovementRepo) Create(_ context.Context, movement *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movements[movement.MovementID]; ok {
		return domain.ErrDuplicate
	}
	r.s.movements[movement.MovementID] = cloneMovement(*movement)
	return nil
}

// GetByID obtiene un movimiento por ID; (nil, nil) si no existe.
func (r *MovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	m = cloneMovement(m)
	return &m, nil
}

// Update reemplaza todos los campos salvo el ID y la fecha de creación.
func (r *MovementRepo) Update(_ context.Context, movement *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.movements[movement.MovementID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := cloneMovement(*movement)
	updated.CreatedAt = current.CreatedAt
	r.s.movements[movement.MovementID] = updated
	return nil
}

// List devuelve los movimientos que cumplen filter, por timestamp descendente.
func (r *MovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Movement, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		if !matches(&m, filter) {
			continue
		}
		c := cloneMovement(m)
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].Timestamp.After(list[j].Timestamp)
		}
		return list[i].MovementID > list[j].MovementID
	})
	return list, nil
}

func matches(m *entity.Movement, f repository.MovementFilter) bool {
	if f.ProductID != "" && m.ProductID != f.ProductID {
		return false
	}
	if f.FromLocation != "" && m.FromID() != f.FromLocation {
		return false
	}
	if f.ToLocation != "" && m.ToID() != f.ToLocation {
		return false
	}
	if f.Location != "" && m.FromID() != f.Location && m.ToID() != f.Location {
		return false
	}
	return true
}
