package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appcosting "github.com/davidquintanajob/vdoctor-costing/internal/application/costing"
	domcosting "github.com/davidquintanajob/vdoctor-costing/internal/domain/costing"
	"github.com/davidquintanajob/vdoctor-costing/internal/infrastructure/backendapi"
	httpRouter "github.com/davidquintanajob/vdoctor-costing/internal/interfaces/http"
	"github.com/davidquintanajob/vdoctor-costing/pkg/config"
	"github.com/davidquintanajob/vdoctor-costing/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	politica := domcosting.ParsePolitica(cfg.Costeo.Politica)
	tasa := cfg.Costeo.TasaCambio()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("politica", string(politica)).
		Str("tasa_cambio", tasa.String()).
		Msg("iniciando aplicación")
	if tasa.IsZero() {
		log.Warn().Msg("tasa de cambio ausente o no positiva; los costos USD quedarán en cero")
	}

	backend := backendapi.NewClient(backendapi.Config{
		BaseURL: cfg.Backend.BaseURL,
		Token:   cfg.Backend.Token,
		Timeout: cfg.Backend.Timeout(),
	})

	historialSvc := appcosting.NewHistorialService(backend, log)
	registrarUC := appcosting.NewRegistrarEntradaUseCase(
		politica, tasa, cfg.Costeo.IDUsuario,
		historialSvc, backend, backend, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "V-Doctor Costing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegistrarEntrada: registrarUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
