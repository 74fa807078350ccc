package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-ledger/internal/application/inventory"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-ledger/pkg/config"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// ledger agrupa los repositorios del almacén elegido por DB_DRIVER.
type ledger struct {
	products  repository.ProductRepository
	locations repository.LocationRepository
	movements repository.MovementRepository
	tx        inventory.TxRunner
	close     func()
}

func (l *ledger) Close() {
	if l.close != nil {
		l.close()
	}
}

// openLedger abre el almacén. Con migrate=true asegura que el esquema exista antes de usarlo.
func openLedger(ctx context.Context, cfg *config.Config, log *logger.Logger, migrate bool) (*ledger, error) {
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al detener el proceso")
		store := memory.NewStore()
		return &ledger{
			products:  store.Products(),
			locations: store.Locations(),
			movements: store.Movements(),
			tx:        store,
		}, nil

	case config.DriverPostgres:
		if migrate {
			version, err := postgres.Migrate(cfg.DB.ConnectionString())
			if err != nil {
				return nil, err
			}
			log.Info().Uint("schema_version", version).Msg("esquema al día")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &ledger{
			products:  postgres.NewProductRepository(pool),
			locations: postgres.NewLocationRepository(pool),
			movements: postgres.NewMovementRepository(pool),
			tx:        postgres.NewTxRunner(pool),
			close:     pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("DB_DRIVER no soportado: %s", cfg.DB.Driver)
}
