// seed crea el usuario administrador inicial y un catálogo de muestra.
//
// Uso: SEED_ADMIN_PASSWORD=... go run ./cmd/seed
// Es idempotente: si el email del admin ya existe no toca nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/infrastructure/postgres"
	"github.com/tlapasoft/tlapaleria-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		fail("SEED_ADMIN_PASSWORD es obligatorio")
	}
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@tlapaleria.mx"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)

	existente, err := usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		fail("consultar admin: %v", err)
	}
	if existente != nil {
		fmt.Printf("el usuario %s ya existe, nada que hacer\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de password: %v", err)
	}
	admin := &entity.Usuario{
		Email:         email,
		Nombre:        "Administrador",
		PasswordHash:  string(hash),
		Rol:           entity.RolAdmin,
		FechaCreacion: time.Now(),
	}
	if err := usuarioRepo.Create(ctx, admin); err != nil {
		fail("crear admin: %v", err)
	}
	fmt.Printf("usuario admin creado: %s (id %d)\n", admin.Email, admin.ID)

	for _, p := range catalogoMuestra() {
		if err := productoRepo.Create(ctx, p); err != nil {
			fail("crear producto %q: %v", p.Nombre, err)
		}
	}
	fmt.Println("catálogo de muestra cargado")
}

// catalogoMuestra productos típicos de mostrador para arrancar con datos.
func catalogoMuestra() []*entity.Producto {
	ahora := time.Now()
	nuevo := func(nombre, categoria, ubicacion string, precio float64, stock, minimo int) *entity.Producto {
		return &entity.Producto{
			Nombre:             nombre,
			Precio:             decimal.NewFromFloat(precio),
			StockActual:        stock,
			StockMinimo:        minimo,
			Categoria:          categoria,
			Ubicacion:          ubicacion,
			FechaCreacion:      ahora,
			FechaActualizacion: ahora,
		}
	}
	return []*entity.Producto{
		nuevo("Martillo de uña 16 oz", "Herramientas", "Pasillo 1", 149.90, 12, 4),
		nuevo("Desarmador plano 1/4", "Herramientas", "Pasillo 1", 45.00, 20, 6),
		nuevo("Clavo 2 1/2\" (kg)", "Ferretería", "Mostrador", 38.50, 50, 15),
		nuevo("Pintura vinílica blanca 4L", "Pinturas", "Pasillo 3", 389.00, 8, 3),
		nuevo("Brocha 2\"", "Pinturas", "Pasillo 3", 32.00, 25, 10),
		nuevo("Cemento gris 50 kg", "Construcción", "Bodega", 215.00, 30, 10),
		nuevo("Cinta de aislar", "Eléctrico", "Mostrador", 18.00, 40, 12),
		nuevo("Foco LED 9W", "Eléctrico", "Pasillo 2", 55.00, 35, 10),
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
