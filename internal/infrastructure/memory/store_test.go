package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/memory"
)

func ptr(s string) *string { return &s }

func at(day, hour int) time.Time {
	return time.Date(2025, time.October, day, hour, 0, 0, 0, time.UTC)
}

func TestProductRepo_CreateDuplicadoNoModifica(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()

	require.NoError(t, repo.Create(ctx, &entity.Product{ProductID: "P001", Name: "Laptop"}))
	err := repo.Create(ctx, &entity.Product{ProductID: "P001", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := repo.GetByID(ctx, "P001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Laptop", got.Name, "el registro existente no debe cambiar")
}

func TestProductRepo_GetByIDInexistente(t *testing.T) {
	got, err := memory.NewStore().Products().GetByID(context.Background(), "NOPE")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepo_UpdateInexistente(t *testing.T) {
	err := memory.NewStore().Products().Update(context.Background(), &entity.Product{ProductID: "X", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Los registros devueltos son copias: mutarlos no altera el almacén.
func TestProductRepo_CopiasAisladas(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	p := &entity.Product{ProductID: "P001", Name: "Laptop"}
	require.NoError(t, repo.Create(ctx, p))
	p.Name = "mutado"

	got, _ := repo.GetByID(ctx, "P001")
	got.Name = "también mutado"

	again, _ := repo.GetByID(ctx, "P001")
	assert.Equal(t, "Laptop", again.Name)
}

func TestLocationRepo_ListOrdenadoYCount(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Locations()
	for _, id := range []string{"L003", "L001", "L002"} {
		require.NoError(t, repo.Create(ctx, &entity.Location{LocationID: id, Name: id}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "L001", list[0].LocationID)
	assert.Equal(t, "L003", list[2].LocationID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMovementRepo_ListFiltrosYOrden(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Movements()
	movs := []*entity.Movement{
		{MovementID: "M1", ProductID: "P001", ToLocation: ptr("L001"), Qty: 50, Timestamp: at(1, 9)},
		{MovementID: "M2", ProductID: "P001", FromLocation: ptr("L001"), ToLocation: ptr("L002"), Qty: 10, Timestamp: at(2, 9)},
		{MovementID: "M3", ProductID: "P002", FromLocation: ptr("L002"), Qty: 1, Timestamp: at(3, 9)},
	}
	for _, m := range movs {
		require.NoError(t, repo.Create(ctx, m))
	}

	all, err := repo.List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"M3", "M2", "M1"}, ids(all), "más recientes primero")

	byProduct, _ := repo.List(ctx, repository.MovementFilter{ProductID: "P001"})
	assert.Equal(t, []string{"M2", "M1"}, ids(byProduct))

	into, _ := repo.List(ctx, repository.MovementFilter{ToLocation: "L002"})
	assert.Equal(t, []string{"M2"}, ids(into))

	outOf, _ := repo.List(ctx, repository.MovementFilter{FromLocation: "L002"})
	assert.Equal(t, []string{"M3"}, ids(outOf))

	touching, _ := repo.List(ctx, repository.MovementFilter{Location: "L001"})
	assert.Equal(t, []string{"M2", "M1"}, ids(touching))
}

func TestMovementRepo_UpdateConservaCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Movements()
	created := at(1, 8)
	require.NoError(t, repo.Create(ctx, &entity.Movement{
		MovementID: "M1", ProductID: "P001", ToLocation: ptr("L001"), Qty: 5, Timestamp: at(1, 9), CreatedAt: created,
	}))

	require.NoError(t, repo.Update(ctx, &entity.Movement{
		MovementID: "M1", ProductID: "P001", FromLocation: ptr("L001"), Qty: 2, Timestamp: at(2, 9),
	}))

	got, err := repo.GetByID(ctx, "M1")
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Nil(t, got.ToLocation)
	assert.Equal(t, "L001", got.FromID())
	assert.Equal(t, 2, got.Qty)
}

func TestStore_RunRestauraSiFalla(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("boom")

	err := store.Run(ctx, func(products repository.ProductRepository, locations repository.LocationRepository, _ repository.MovementRepository) error {
		require.NoError(t, products.Create(ctx, &entity.Product{ProductID: "P001", Name: "Laptop"}))
		require.NoError(t, locations.Create(ctx, &entity.Location{LocationID: "L001", Name: "Main"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, _ := store.Products().Count(ctx)
	assert.Zero(t, n, "la transacción fallida no debe dejar productos")
	n, _ = store.Locations().Count(ctx)
	assert.Zero(t, n)
}

func TestStore_RunConfirma(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := store.Run(ctx, func(products repository.ProductRepository, _ repository.LocationRepository, _ repository.MovementRepository) error {
		return products.Create(ctx, &entity.Product{ProductID: "P001", Name: "Laptop"})
	})
	require.NoError(t, err)

	n, _ := store.Products().Count(ctx)
	assert.Equal(t, 1, n)
}

func ids(list []*entity.Movement) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		out = append(out, m.MovementID)
	}
	return out
}
