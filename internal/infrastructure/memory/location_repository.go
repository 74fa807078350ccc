package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación en memoria de LocationRepository.
type LocationRepo struct {
	s *Store
}

// Create persiste una ubicación nueva. domain.ErrDuplicate si el ID ya existe.
func (r *LocationRepo) Create(_ context.Context, location *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[location.LocationID]; ok {
		return domain.ErrDuplicate
	}
	r.s.locations[location.LocationID] = *location
	return nil
}

// GetByID obtiene una ubicación por ID; (nil, nil) si no existe.
func (r *LocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// Update actualiza el nombre. No toca el ID ni la fecha de creación.
func (r *LocationRepo) Update(_ context.Context, location *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.locations[location.LocationID]
	if !ok {
		return domain.ErrNotFound
	}
	l.Name = location.Name
	l.UpdatedAt = location.UpdatedAt
	r.s.locations[location.LocationID] = l
	return nil
}

// List lista las ubicaciones ordenadas por ID.
func (r *LocationRepo) List(_ context.Context) ([]*entity.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Location, 0, len(r.s.locations))
	for _, l := range r.s.locations {
		list = append(list, &l)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].LocationID < list[j].LocationID })
	return list, nil
}

// Count devuelve el número de ubicaciones.
func (r *LocationRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.locations), nil
}
