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

	"github.com/tlapasoft/tlapaleria-api/internal/application/auth"
	"github.com/tlapasoft/tlapaleria-api/internal/application/inteligencia"
	"github.com/tlapasoft/tlapaleria-api/internal/application/usecase"
	infrapdf "github.com/tlapasoft/tlapaleria-api/internal/infrastructure/pdf"
	"github.com/tlapasoft/tlapaleria-api/internal/infrastructure/postgres"
	httpRouter "github.com/tlapasoft/tlapaleria-api/internal/interfaces/http"
	"github.com/tlapasoft/tlapaleria-api/pkg/config"
	"github.com/tlapasoft/tlapaleria-api/pkg/logger"
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
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	intelRepo := postgres.NewInteligenciaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	ventaUC := usecase.NewVentaUseCase(txRunner, ventaRepo)
	inteligenciaUC := inteligencia.NewInteligenciaUseCase(productoRepo, intelRepo)

	pdfGenerator := infrapdf.NewMarotoReporteGenerator(cfg.App.Name)
	reporteUC := inteligencia.NewReporteUseCase(inteligenciaUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tlapalería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductoUC:     productoUC,
		VentaUC:        ventaUC,
		InteligenciaUC: inteligenciaUC,
		ReporteUC:      reporteUC,
		JWTSecret:      cfg.JWT.Secret,
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
