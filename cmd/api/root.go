package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-ledger/internal/application/inventory"
	"github.com/jhoicas/inventory-ledger/internal/application/usecase"
	infrapdf "github.com/jhoicas/inventory-ledger/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventory-ledger/internal/interfaces/http"
	"github.com/jhoicas/inventory-ledger/pkg/config"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// cli estado compartido por los subcomandos: configuración y logger ya construidos.
type cli struct {
	cfg      *config.Config
	log      *logger.Logger
	logLevel string
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "inventory-ledger",
		Short: "Libro de movimientos de inventario con saldos por ubicación",
		Long: `inventory-ledger registra productos, ubicaciones y movimientos entre ellas,
y calcula el saldo de cada producto por ubicación recorriendo el libro completo.

Sin subcomando inicia la API HTTP.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "nivel de log (trace, debug, info, warn, error); pisa LOG_LEVEL")

	root.AddCommand(c.migrateCmd(), c.seedCmd(), c.tokenCmd())
	return root
}

func (c *cli) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if c.logLevel != "" {
		cfg.App.LogLevel = c.logLevel
	}
	c.cfg = cfg
	c.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: cfg.App.Name})
	return nil
}

// serve levanta la API: almacén, esquema, seed opcional, servidor y apagado ordenado.
func (c *cli) serve(ctx context.Context) error {
	cfg, log := c.cfg, c.log
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	l, err := openLedger(ctx, cfg, log, true)
	if err != nil {
		log.Error().Err(err).Msg("abrir almacén")
		return err
	}
	defer l.Close()

	if cfg.SeedOnStart {
		if err := c.runSeed(ctx, l); err != nil {
			return err
		}
	}

	productUC := usecase.NewProductUseCase(l.products, l.movements)
	locationUC := usecase.NewLocationUseCase(l.locations, l.movements)
	movementUC := inventory.NewMovementUseCase(l.movements, l.products, l.locations)
	balanceUC := inventory.NewBalanceUseCase(l.movements, l.products, l.locations,
		infrapdf.NewMarotoBalanceReport(cfg.App.Name+" - saldos"))

	if cfg.JWT.Enabled() {
		log.Info().Msg("rutas de escritura protegidas con JWT")
	} else {
		log.Warn().Msg("JWT_SECRET vacío: rutas de escritura sin autenticación")
	}

	app := httpRouter.NewServer(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		SwaggerFile: "./docs/swagger.json",
	}, httpRouter.RouterDeps{
		ProductUC:  productUC,
		LocationUC: locationUC,
		MovementUC: movementUC,
		BalanceUC:  balanceUC,
		Logger:     log,
		JWTSecret:  cfg.JWT.Secret,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		if err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
			return err
		}
		return nil
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
		return err
	}

	log.Info().Msg("aplicación detenida")
	return nil
}

func (c *cli) runSeed(ctx context.Context, l *ledger) error {
	seeded, err := inventory.NewSeedUseCase(l.tx, l.products).Seed(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("cargar datos de ejemplo")
		return err
	}
	if seeded {
		c.log.Info().Msg("datos de ejemplo cargados")
	} else {
		c.log.Debug().Msg("almacén con datos, seed omitido")
	}
	return nil
}
