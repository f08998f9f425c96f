package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tlapasoft/tlapaleria-api/internal/application/auth"
	"github.com/tlapasoft/tlapaleria-api/internal/application/inteligencia"
	"github.com/tlapasoft/tlapaleria-api/internal/application/usecase"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductoUC     *usecase.ProductoUseCase
	VentaUC        *usecase.VentaUseCase
	InteligenciaUC *inteligencia.InteligenciaUseCase
	ReporteUC      *inteligencia.ReporteUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Crear)
	productos.Get("/", productoHandler.Listar)
	productos.Get("/codigo/:codigo", productoHandler.ObtenerPorCodigoBarras)
	productos.Get("/:id", productoHandler.Obtener)
	productos.Put("/:id", productoHandler.Actualizar)
	productos.Delete("/:id", RequireRol(entity.RolAdmin), productoHandler.Eliminar)

	// Ventas
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Post("/", ventaHandler.Registrar)
	ventas.Get("/", ventaHandler.Listar)
	ventas.Get("/estadisticas/dia", ventaHandler.EstadisticasDia)

	// Inventario inteligente
	inventario := protected.Group("/inventario")
	inteligenciaHandler := NewInteligenciaHandler(deps.InteligenciaUC, deps.ReporteUC)
	inventario.Get("/prediccion/:id", inteligenciaHandler.PredecirDemanda)
	inventario.Get("/punto-reorden/:id", inteligenciaHandler.PuntoReorden)
	inventario.Get("/alertas", inteligenciaHandler.Alertas)
	inventario.Get("/lento-movimiento", inteligenciaHandler.LentoMovimiento)
	inventario.Get("/valor", inteligenciaHandler.ValorInventario)
	inventario.Get("/rentables", inteligenciaHandler.Rentables)
	inventario.Get("/reporte", inteligenciaHandler.Reporte)
}
