// Package memory implementa el almacén del libro en memoria. Se usa en desarrollo
// (DB_DRIVER=memory) y como almacén hermético en los tests.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventory-ledger/internal/application/inventory"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store guarda las tres colecciones indexadas por su identificador.
// Los registros se copian al entrar y al salir para que los llamadores no compartan memoria.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	products  map[string]entity.Product
	locations map[string]entity.Location
	movements map[string]entity.Movement
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]entity.Product),
		locations: make(map[string]entity.Location),
		movements: make(map[string]entity.Movement),
	}
}

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Locations devuelve el repositorio de ubicaciones.
func (s *Store) Locations() *LocationRepo { return &LocationRepo{s: s} }

// Movements devuelve el repositorio de movimientos.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{s: s} }

// Run ejecuta fn de forma serializada con otras transacciones y restaura el estado previo si falla.
// Escrituras fuera de Run que ocurran durante fn se pierden si se restaura.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	snap := s.snapshot()
	if err := fn(s.Products(), s.Locations(), s.Movements()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	products  map[string]entity.Product
	locations map[string]entity.Location
	movements map[string]entity.Movement
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		products:  make(map[string]entity.Product, len(s.products)),
		locations: make(map[string]entity.Location, len(s.locations)),
		movements: make(map[string]entity.Movement, len(s.movements)),
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.locations {
		snap.locations[k] = v
	}
	for k, v := range s.movements {
		snap.movements[k] = cloneMovement(v)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.locations = snap.locations
	s.movements = snap.movements
}

func cloneMovement(m entity.Movement) entity.Movement {
	m.FromLocation = cloneString(m.FromLocation)
	m.ToLocation = cloneString(m.ToLocation)
	return m
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
