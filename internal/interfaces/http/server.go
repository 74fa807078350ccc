package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ServerConfig opciones del servidor HTTP.
type ServerConfig struct {
	AppName string
	// SwaggerFile ruta del swagger.json; si no existe no se monta /docs.
	SwaggerFile string
}

// NewServer arma la aplicación Fiber con los middlewares comunes y las rutas de la API.
func NewServer(cfg ServerConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestID())
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    cfg.AppName + " API",
			}))
		}
	}

	if deps.AppName == "" {
		deps.AppName = cfg.AppName
	}
	Router(app, deps)
	return app
}
