package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp arma la aplicación Fiber del almacén simulado.
func NewApp(handler *StoreHandler) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "repuestos-mockstore"})
	app.Use(recover.New())

	api := app.Group("/api", AuthMiddleware())
	api.Get("/lists/:collection", handler.List)
	api.Post("/lists/:collection", handler.Create)
	api.Put("/lists/:collection/:id", handler.Update)
	api.Delete("/lists/:collection/:id", handler.Delete)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	return app
}
