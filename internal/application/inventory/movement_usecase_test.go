package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	"github.com/jhoicas/inventory-ledger/internal/application/inventory"
	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/memory"
)

var fixedNow = time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)

// newMovementUC prepara un almacén con P001 y las ubicaciones L001/L002.
func newMovementUC(t *testing.T) (*inventory.MovementUseCase, *memory.Store) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ProductID: "P001", Name: "Laptop"}))
	require.NoError(t, store.Locations().Create(ctx, &entity.Location{LocationID: "L001", Name: "Main Warehouse"}))
	require.NoError(t, store.Locations().Create(ctx, &entity.Location{LocationID: "L002", Name: "Retail Store A"}))

	uc := inventory.NewMovementUseCase(store.Movements(), store.Products(), store.Locations(),
		inventory.WithClock(func() time.Time { return fixedNow }))
	return uc, store
}

func reasons(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, got %v", err)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Reason
	}
	return out
}

func TestMovementUseCase_CreateTimestampPorDefecto(t *testing.T) {
	uc, _ := newMovementUC(t)
	out, err := uc.Create(context.Background(), dto.CreateMovementRequest{
		MovementID: "M001", ProductID: "P001", ToLocation: "L001", Qty: 50,
	})
	require.NoError(t, err)
	assert.True(t, out.Timestamp.Equal(fixedNow))
	assert.Nil(t, out.FromLocation)
	require.NotNil(t, out.ToLocation)
	assert.Equal(t, "L001", *out.ToLocation)
}

func TestMovementUseCase_CreateTimestampExplicito(t *testing.T) {
	uc, _ := newMovementUC(t)
	ts := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	out, err := uc.Create(context.Background(), dto.CreateMovementRequest{
		MovementID: "M001", ProductID: "P001", ToLocation: "L001", Qty: 50, Timestamp: &ts,
	})
	require.NoError(t, err)
	assert.True(t, out.Timestamp.Equal(ts))
}

// Extremos con solo espacios cuentan como ausentes.
func TestMovementUseCase_CreateExtremosEnBlanco(t *testing.T) {
	uc, _ := newMovementUC(t)
	_, err := uc.Create(context.Background(), dto.CreateMovementRequest{
		MovementID: "M001", ProductID: "P001", FromLocation: "  ", ToLocation: "\t", Qty: 5,
	})
	assert.Equal(t, domain.ReasonMissingBothEndpoints, reasons(t, err)["from_location"])
}

func TestMovementUseCase_CreateRechazos(t *testing.T) {
	tests := []struct {
		name   string
		in     dto.CreateMovementRequest
		field  string
		reason string
	}{
		{"misma ubicación", dto.CreateMovementRequest{MovementID: "M1", ProductID: "P001", FromLocation: "L001", ToLocation: "L001", Qty: 1}, "to_location", domain.ReasonSameSourceAndDestination},
		{"cantidad cero", dto.CreateMovementRequest{MovementID: "M1", ProductID: "P001", ToLocation: "L001", Qty: 0}, "qty", domain.ReasonInvalidQuantity},
		{"cantidad negativa", dto.CreateMovementRequest{MovementID: "M1", ProductID: "P001", ToLocation: "L001", Qty: -3}, "qty", domain.ReasonInvalidQuantity},
		{"producto desconocido", dto.CreateMovementRequest{MovementID: "M1", ProductID: "P999", ToLocation: "L001", Qty: 1}, "product_id", domain.ReasonUnknownProduct},
		{"origen desconocido", dto.CreateMovementRequest{MovementID: "M1", ProductID: "P001", FromLocation: "L999", Qty: 1}, "from_location", domain.ReasonUnknownLocation},
		{"destino desconocido", dto.CreateMovementRequest{MovementID: "M1", ProductID: "P001", ToLocation: "L999", Qty: 1}, "to_location", domain.ReasonUnknownLocation},
		{"sin id", dto.CreateMovementRequest{ProductID: "P001", ToLocation: "L001", Qty: 1}, "movement_id", domain.ReasonRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store := newMovementUC(t)
			_, err := uc.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tt.reason, reasons(t, err)[tt.field])

			list, err := store.Movements().List(context.Background(), repository.MovementFilter{})
			require.NoError(t, err)
			assert.Empty(t, list, "un movimiento rechazado no se guarda")
		})
	}
}

func TestMovementUseCase_CreateDuplicado(t *testing.T) {
	ctx := context.Background()
	uc, store := newMovementUC(t)
	_, err := uc.Create(ctx, dto.CreateMovementRequest{MovementID: "M001", ProductID: "P001", ToLocation: "L001", Qty: 50})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateMovementRequest{MovementID: "M001", ProductID: "P001", ToLocation: "L002", Qty: 7})
	var dup *domain.DuplicateIDError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "movement_id", dup.Field)

	got, _ := store.Movements().GetByID(ctx, "M001")
	assert.Equal(t, 50, got.Qty)
	assert.Equal(t, "L001", got.ToID())
}

// Editar sin timestamp conserva el original; el ID no cambia.
func TestMovementUseCase_UpdateConservaTimestamp(t *testing.T) {
	ctx := context.Background()
	uc, _ := newMovementUC(t)
	ts := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	_, err := uc.Create(ctx, dto.CreateMovementRequest{MovementID: "M001", ProductID: "P001", ToLocation: "L001", Qty: 50, Timestamp: &ts})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "M001", dto.UpdateMovementRequest{ProductID: "P001", FromLocation: "L001", ToLocation: "L002", Qty: 10})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "M001", out.MovementID)
	assert.True(t, out.Timestamp.Equal(ts))
	assert.Equal(t, 10, out.Qty)
	assert.Equal(t, "L001", *out.FromLocation)

	ts2 := time.Date(2025, 10, 2, 9, 0, 0, 0, time.UTC)
	out, err = uc.Update(ctx, "M001", dto.UpdateMovementRequest{ProductID: "P001", ToLocation: "L002", Qty: 10, Timestamp: &ts2})
	require.NoError(t, err)
	assert.True(t, out.Timestamp.Equal(ts2))
	assert.Nil(t, out.FromLocation)
}

func TestMovementUseCase_UpdateInvalidoNoModifica(t *testing.T) {
	ctx := context.Background()
	uc, store := newMovementUC(t)
	_, err := uc.Create(ctx, dto.CreateMovementRequest{MovementID: "M001", ProductID: "P001", ToLocation: "L001", Qty: 50})
	require.NoError(t, err)

	_, err = uc.Update(ctx, "M001", dto.UpdateMovementRequest{ProductID: "P001", FromLocation: "L001", ToLocation: "L001", Qty: 5})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	got, _ := store.Movements().GetByID(ctx, "M001")
	assert.Equal(t, 50, got.Qty)
	assert.False(t, got.HasFrom())
}

func TestMovementUseCase_UpdateInexistente(t *testing.T) {
	uc, _ := newMovementUC(t)
	out, err := uc.Update(context.Background(), "NOPE", dto.UpdateMovementRequest{ProductID: "P001", ToLocation: "L001", Qty: 1})
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestMovementUseCase_ListFiltra(t *testing.T) {
	ctx := context.Background()
	uc, _ := newMovementUC(t)
	t1 := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	_, err := uc.Create(ctx, dto.CreateMovementRequest{MovementID: "M001", ProductID: "P001", ToLocation: "L001", Qty: 50, Timestamp: &t1})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateMovementRequest{MovementID: "M002", ProductID: "P001", FromLocation: "L001", ToLocation: "L002", Qty: 10, Timestamp: &t2})
	require.NoError(t, err)

	all, err := uc.List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	require.Equal(t, 2, all.Total)
	assert.Equal(t, "M002", all.Items[0].MovementID)

	l2, err := uc.List(ctx, repository.MovementFilter{Location: "L002"})
	require.NoError(t, err)
	require.Len(t, l2.Items, 1)
	assert.Equal(t, "M002", l2.Items[0].MovementID)
}
