package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
	"github.com/tlapasoft/tlapaleria-api/internal/domain"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

func ventaUCDePrueba(productos *fakeProductoRepo) (*VentaUseCase, *fakeVentaRepo) {
	ventas := newFakeVentaRepo()
	uc := NewVentaUseCase(&fakeTxRunner{productos: productos, ventas: ventas}, ventas)
	uc.now = func() time.Time { return fechaFija }
	return uc, ventas
}

func TestVentaRegistrar_DescuentaStock(t *testing.T) {
	productos := newFakeProductoRepo(&entity.Producto{ID: 1, Nombre: "Cemento gris", StockActual: 20})
	uc, _ := ventaUCDePrueba(productos)

	resp, err := uc.Registrar(context.Background(), 7, dto.RegistrarVentaRequest{
		ProductoID:     1,
		Cantidad:       3,
		PrecioUnitario: decimal.NewFromFloat(189.50),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.UsuarioID)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(568.50)), "total = precio × cantidad, fue %s", resp.Total)
	assert.Equal(t, 17, productos.productos[1].StockActual)
	assert.Equal(t, fechaFija, resp.FechaVenta)
}

func TestVentaRegistrar_StockInsuficiente(t *testing.T) {
	productos := newFakeProductoRepo(&entity.Producto{ID: 1, Nombre: "Varilla 3/8", StockActual: 2})
	uc, ventas := ventaUCDePrueba(productos)

	_, err := uc.Registrar(context.Background(), 7, dto.RegistrarVentaRequest{
		ProductoID:     1,
		Cantidad:       5,
		PrecioUnitario: decimal.NewFromInt(120),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, ventas.ventas, "una venta rechazada no se inserta")
	assert.Equal(t, 2, productos.productos[1].StockActual, "el stock no cambia")
}

func TestVentaRegistrar_ProductoInexistente(t *testing.T) {
	uc, _ := ventaUCDePrueba(newFakeProductoRepo())

	_, err := uc.Registrar(context.Background(), 7, dto.RegistrarVentaRequest{
		ProductoID:     99,
		Cantidad:       1,
		PrecioUnitario: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVentaRegistrar_Validaciones(t *testing.T) {
	uc, _ := ventaUCDePrueba(newFakeProductoRepo())

	casos := []struct {
		nombre string
		req    dto.RegistrarVentaRequest
	}{
		{"producto_id cero", dto.RegistrarVentaRequest{Cantidad: 1, PrecioUnitario: decimal.NewFromInt(10)}},
		{"cantidad cero", dto.RegistrarVentaRequest{ProductoID: 1, PrecioUnitario: decimal.NewFromInt(10)}},
		{"precio cero", dto.RegistrarVentaRequest{ProductoID: 1, Cantidad: 1}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Registrar(context.Background(), 7, c.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestVentaRegistrar_ReenvioOffline(t *testing.T) {
	productos := newFakeProductoRepo(&entity.Producto{ID: 1, Nombre: "Thinner", StockActual: 10})
	uc, ventas := ventaUCDePrueba(productos)

	offlineID := uuid.New()
	req := dto.RegistrarVentaRequest{
		ProductoID:     1,
		Cantidad:       2,
		PrecioUnitario: decimal.NewFromInt(85),
		OfflineID:      &offlineID,
	}

	primera, err := uc.Registrar(context.Background(), 7, req)
	require.NoError(t, err)

	// El reenvío devuelve la venta original sin volver a descontar.
	segunda, err := uc.Registrar(context.Background(), 7, req)
	require.NoError(t, err)

	assert.Equal(t, primera.ID, segunda.ID)
	assert.Len(t, ventas.ventas, 1)
	assert.Equal(t, 8, productos.productos[1].StockActual)
}

func TestVentaRegistrar_FallaEnInsercion(t *testing.T) {
	productos := newFakeProductoRepo(&entity.Producto{ID: 1, Nombre: "Lija", StockActual: 10})
	ventas := newFakeVentaRepo()
	ventas.createErr = errors.New("conexión perdida")
	uc := NewVentaUseCase(&fakeTxRunner{productos: productos, ventas: ventas}, ventas)
	uc.now = func() time.Time { return fechaFija }

	_, err := uc.Registrar(context.Background(), 7, dto.RegistrarVentaRequest{
		ProductoID:     1,
		Cantidad:       4,
		PrecioUnitario: decimal.NewFromInt(12),
	})
	require.Error(t, err)
	assert.Equal(t, 10, productos.productos[1].StockActual, "rollback restaura el stock")
}

func TestVentaListar_RangoInvertido(t *testing.T) {
	uc, _ := ventaUCDePrueba(newFakeProductoRepo())

	_, err := uc.Listar(context.Background(), fechaFija, fechaFija.AddDate(0, 0, -1), 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVentaEstadisticasDelDia(t *testing.T) {
	productos := newFakeProductoRepo()
	ventas := newFakeVentaRepo()
	ventas.resumen = repository.ResumenDia{
		NumVentas:        4,
		UnidadesVendidas: 9,
		IngresosTotales:  decimal.NewFromFloat(1234.50),
	}
	uc := NewVentaUseCase(&fakeTxRunner{productos: productos, ventas: ventas}, ventas)
	uc.now = func() time.Time { return fechaFija }

	est, err := uc.EstadisticasDelDia(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2026-02-15", est.Fecha)
	assert.Equal(t, 4, est.NumVentas)
	assert.Equal(t, 9, est.UnidadesVendidas)
	assert.True(t, est.IngresosTotales.Equal(decimal.NewFromFloat(1234.50)))
}
