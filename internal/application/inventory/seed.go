package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

// SeedUseCase carga un conjunto de datos de ejemplo cuando el almacén está vacío.
type SeedUseCase struct {
	txRunner TxRunner
	products repository.ProductRepository
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(txRunner TxRunner, products repository.ProductRepository) *SeedUseCase {
	return &SeedUseCase{txRunner: txRunner, products: products}
}

// Seed inserta los datos de ejemplo en una sola transacción si no hay productos.
// Devuelve true si sembró.
func (uc *SeedUseCase) Seed(ctx context.Context) (bool, error) {
	n, err := uc.products.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: contar productos: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	data := SeedData()
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
	) error {
		for _, p := range data.Products {
			if err := productRepo.Create(ctx, p); err != nil {
				return fmt.Errorf("seed: producto %s: %w", p.ProductID, err)
			}
		}
		for _, l := range data.Locations {
			if err := locationRepo.Create(ctx, l); err != nil {
				return fmt.Errorf("seed: ubicación %s: %w", l.LocationID, err)
			}
		}
		for _, m := range data.Movements {
			if err := movementRepo.Create(ctx, m); err != nil {
				return fmt.Errorf("seed: movimiento %s: %w", m.MovementID, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Dataset agrupa los registros de ejemplo.
type Dataset struct {
	Products  []*entity.Product
	Locations []*entity.Location
	Movements []*entity.Movement
}

// SeedData devuelve una copia nueva del conjunto de ejemplo: 4 productos, 4 ubicaciones y
// 22 movimientos entre el 1 y el 6 de octubre de 2025 que combinan recepciones externas,
// traslados y consumos.
func SeedData() Dataset {
	now := time.Now()
	products := []*entity.Product{
		{ProductID: "P001", Name: "Laptop", Description: "Dell Laptop 15 inch"},
		{ProductID: "P002", Name: "Mouse", Description: "Wireless Mouse"},
		{ProductID: "P003", Name: "Keyboard", Description: "Mechanical Keyboard"},
		{ProductID: "P004", Name: "Monitor", Description: "24 inch LED Monitor"},
	}
	for _, p := range products {
		p.CreatedAt, p.UpdatedAt = now, now
	}
	locations := []*entity.Location{
		{LocationID: "L001", Name: "Main Warehouse"},
		{LocationID: "L002", Name: "Retail Store A"},
		{LocationID: "L003", Name: "Retail Store B"},
		{LocationID: "L004", Name: "Service Center"},
	}
	for _, l := range locations {
		l.CreatedAt, l.UpdatedAt = now, now
	}

	type row struct {
		id, product, from, to string
		qty                   int
		day, hour, min        int
	}
	rows := []row{
		{"M001", "P001", "", "L001", 50, 1, 9, 0},
		{"M002", "P002", "", "L001", 100, 1, 9, 30},
		{"M003", "P003", "", "L001", 80, 1, 10, 0},
		{"M004", "P004", "", "L001", 30, 1, 10, 30},
		{"M005", "P001", "L001", "L002", 10, 2, 11, 0},
		{"M006", "P002", "L001", "L002", 20, 2, 11, 30},
		{"M007", "P001", "L001", "L003", 15, 2, 14, 0},
		{"M008", "P003", "L001", "L003", 25, 2, 14, 30},
		{"M009", "P004", "L001", "L002", 8, 3, 9, 0},
		{"M010", "P002", "L001", "L004", 15, 3, 9, 30},
		{"M011", "P001", "L002", "L003", 3, 3, 13, 0},
		{"M012", "P003", "L001", "L002", 20, 3, 13, 30},
		{"M013", "P004", "L001", "L003", 7, 4, 10, 0},
		{"M014", "P002", "L002", "", 5, 4, 10, 30},
		{"M015", "P001", "L003", "", 2, 4, 14, 0},
		{"M016", "P003", "L002", "L004", 10, 4, 14, 30},
		{"M017", "P004", "L002", "L004", 3, 5, 9, 0},
		{"M018", "P002", "L001", "L003", 25, 5, 9, 30},
		{"M019", "P001", "L001", "L004", 5, 5, 11, 0},
		{"M020", "P003", "L003", "L001", 5, 5, 11, 30},
		{"M021", "P004", "L003", "", 4, 5, 15, 0},
		{"M022", "P002", "L004", "L002", 8, 6, 10, 0},
	}
	movements := make([]*entity.Movement, 0, len(rows))
	for _, r := range rows {
		movements = append(movements, &entity.Movement{
			MovementID:   r.id,
			ProductID:    r.product,
			FromLocation: optional(r.from),
			ToLocation:   optional(r.to),
			Qty:          r.qty,
			Timestamp:    time.Date(2025, time.October, r.day, r.hour, r.min, 0, 0, time.UTC),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return Dataset{Products: products, Locations: locations, Movements: movements}
}

func optional(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
