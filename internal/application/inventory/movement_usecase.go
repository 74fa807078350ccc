package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	invrules "github.com/jhoicas/inventory-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

// MovementUseCase registra y edita entradas del libro de movimientos.
// Valida las reglas del movimiento antes de persistir; no hay borrado.
type MovementUseCase struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
	locations repository.LocationRepository
	now       func() time.Time
}

// MovementOption configura el caso de uso.
type MovementOption func(*MovementUseCase)

// WithClock reemplaza el reloj usado para el timestamp por defecto.
func WithClock(now func() time.Time) MovementOption {
	return func(uc *MovementUseCase) { uc.now = now }
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	movements repository.MovementRepository,
	products repository.ProductRepository,
	locations repository.LocationRepository,
	opts ...MovementOption,
) *MovementUseCase {
	uc := &MovementUseCase{
		movements: movements,
		products:  products,
		locations: locations,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create valida y registra un movimiento. Sin timestamp se usa la hora actual.
// Errores: *domain.ValidationError (400), *domain.DuplicateIDError (409) o fallo del almacén.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	now := uc.now()
	m := &entity.Movement{
		MovementID:   strings.TrimSpace(in.MovementID),
		ProductID:    strings.TrimSpace(in.ProductID),
		FromLocation: invrules.NormalizeLocation(in.FromLocation),
		ToLocation:   invrules.NormalizeLocation(in.ToLocation),
		Qty:          in.Qty,
		Timestamp:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Timestamp != nil {
		m.Timestamp = *in.Timestamp
	}

	if err := uc.validate(ctx, m); err != nil {
		return nil, err
	}

	existing, err := uc.movements.GetByID(ctx, m.MovementID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateIDError{Field: "movement_id", ID: m.MovementID}
	}
	if err := uc.movements.Create(ctx, m); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, &domain.DuplicateIDError{Field: "movement_id", ID: m.MovementID}
		}
		return nil, err
	}
	out := dto.NewMovementResponse(m)
	return &out, nil
}

// Update reemplaza producto, extremos y cantidad del movimiento id. Sin timestamp se conserva
// el original. El ID nunca cambia. Devuelve (nil, nil) si no existe.
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	existing, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	m := *existing
	m.ProductID = strings.TrimSpace(in.ProductID)
	m.FromLocation = invrules.NormalizeLocation(in.FromLocation)
	m.ToLocation = invrules.NormalizeLocation(in.ToLocation)
	m.Qty = in.Qty
	if in.Timestamp != nil {
		m.Timestamp = *in.Timestamp
	}
	m.UpdatedAt = uc.now()

	if err := uc.validate(ctx, &m); err != nil {
		return nil, err
	}
	if err := uc.movements.Update(ctx, &m); err != nil {
		return nil, err
	}
	out := dto.NewMovementResponse(&m)
	return &out, nil
}

// GetByID obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (uc *MovementUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	m, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	out := dto.NewMovementResponse(m)
	return &out, nil
}

// List lista movimientos filtrados, más recientes primero.
func (uc *MovementUseCase) List(ctx context.Context, filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.movements.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := dto.NewMovementResponses(list)
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// validate combina las reglas estructurales con las que requieren consultar el almacén.
func (uc *MovementUseCase) validate(ctx context.Context, m *entity.Movement) error {
	verr := invrules.ValidateMovement(m)

	if m.ProductID != "" {
		p, err := uc.products.GetByID(ctx, m.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			verr.Add("product_id", domain.ReasonUnknownProduct, "el producto no existe")
		}
	}
	if err := uc.checkLocation(ctx, verr, "from_location", m.FromLocation); err != nil {
		return err
	}
	if err := uc.checkLocation(ctx, verr, "to_location", m.ToLocation); err != nil {
		return err
	}
	return verr.OrNil()
}

func (uc *MovementUseCase) checkLocation(ctx context.Context, verr *domain.ValidationError, field string, id *string) error {
	if id == nil {
		return nil
	}
	l, err := uc.locations.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if l == nil {
		verr.Add(field, domain.ReasonUnknownLocation, "la ubicación no existe")
	}
	return nil
}
