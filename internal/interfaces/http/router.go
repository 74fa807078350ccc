package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ledger/internal/application/inventory"
	"github.com/jhoicas/inventory-ledger/internal/application/usecase"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	LocationUC *usecase.LocationUseCase
	MovementUC *inventory.MovementUseCase
	BalanceUC  *inventory.BalanceUseCase
	Logger     *logger.Logger
	AppName    string
	// JWTSecret vacío deja abiertas las rutas de escritura.
	JWTSecret string
}

// Router registra las rutas de la API. Lecturas públicas; POST/PUT pasan por AuthMiddleware.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	write := AuthMiddleware(deps.JWTSecret)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Get("/", productHandler.List)
	products.Post("/", write, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", write, productHandler.Update)

	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC, log)
	locations.Get("/", locationHandler.List)
	locations.Post("/", write, locationHandler.Create)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", write, locationHandler.Update)

	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, log)
	movements.Get("/", movementHandler.List)
	movements.Post("/", write, movementHandler.Create)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", write, movementHandler.Update)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.BalanceUC, log)
	reports.Get("/balance", reportHandler.Balance)
	reports.Get("/balance/pdf", reportHandler.BalancePDF)
}
