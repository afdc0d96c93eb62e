package http

import (
	"github.com/gofiber/fiber/v2"

	appcosting "github.com/davidquintanajob/vdoctor-costing/internal/application/costing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegistrarEntrada *appcosting.RegistrarEntradaUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	costeo := api.Group("/costeo")
	costeoHandler := NewCosteoHandler(deps.RegistrarEntrada)
	costeo.Post("/sugerencia", costeoHandler.Sugerencia)
	costeo.Post("/entradas", costeoHandler.RegistrarEntrada)
}
