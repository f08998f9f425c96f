package inteligencia

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlapasoft/tlapaleria-api/internal/domain"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

var ahoraFija = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

// Un producto sin ventas en la ventana devuelve todos los derivados en cero,
// sin error.
func TestPredecirDemanda_SinVentas(t *testing.T) {
	intel := &fakeIntelRepo{resumen: map[int64]repository.ResumenVentas{}}
	uc := motorDePrueba(newFakeProductoRepo(), intel, ahoraFija)

	pred, err := uc.PredecirDemanda(context.Background(), 42, 30)
	require.NoError(t, err)

	assert.Equal(t, int64(42), pred.ProductoID)
	assert.Equal(t, 30, pred.PeriodoAnalizado)
	assert.Zero(t, pred.VentasTotales)
	assert.Zero(t, pred.NumeroTransacciones)
	assert.Zero(t, pred.PromedioPorVenta)
	assert.Zero(t, pred.VentasPorDia)
	assert.Zero(t, pred.PrediccionSemanal)
	assert.Zero(t, pred.PrediccionMensual)
	assert.Nil(t, pred.PrimeraVenta)
	assert.Nil(t, pred.UltimaVenta)
}

// La ventana se acota a [1, 365]; cero toma el default de 30.
func TestPredecirDemanda_VentanaAcotada(t *testing.T) {
	cases := []struct {
		nombre   string
		dias     int
		efectivo int
	}{
		{"negativo se recorta a 1", -5, 1},
		{"cero toma el default", 0, 30},
		{"dentro del rango pasa igual", 90, 90},
		{"máximo exacto", 365, 365},
		{"por encima se recorta a 365", 400, 365},
	}

	for _, c := range cases {
		t.Run(c.nombre, func(t *testing.T) {
			intel := &fakeIntelRepo{resumen: map[int64]repository.ResumenVentas{}}
			uc := motorDePrueba(newFakeProductoRepo(), intel, ahoraFija)

			pred, err := uc.PredecirDemanda(context.Background(), 1, c.dias)
			require.NoError(t, err)
			assert.Equal(t, c.efectivo, pred.PeriodoAnalizado)
			assert.Equal(t, ahoraFija.AddDate(0, 0, -c.efectivo), intel.verUltimoDesde(),
				"la consulta debe usar la ventana acotada")
		})
	}
}

func TestPredecirDemanda_Proyecciones(t *testing.T) {
	primera := ahoraFija.AddDate(0, 0, -25)
	ultima := ahoraFija.AddDate(0, 0, -1)
	intel := &fakeIntelRepo{resumen: map[int64]repository.ResumenVentas{
		7: {NumVentas: 12, TotalVendido: 30, PrimeraVenta: &primera, UltimaVenta: &ultima},
	}}
	uc := motorDePrueba(newFakeProductoRepo(), intel, ahoraFija)

	pred, err := uc.PredecirDemanda(context.Background(), 7, 30)
	require.NoError(t, err)

	assert.Equal(t, 30, pred.VentasTotales)
	assert.Equal(t, 12, pred.NumeroTransacciones)
	assert.InDelta(t, 2.5, pred.PromedioPorVenta, 1e-9)
	assert.InDelta(t, 1.0, pred.VentasPorDia, 1e-9)
	assert.Equal(t, 7, pred.PrediccionSemanal)
	assert.Equal(t, 30, pred.PrediccionMensual)
	assert.Equal(t, &primera, pred.PrimeraVenta)
	assert.Equal(t, &ultima, pred.UltimaVenta)
}

// La tasa diaria se diluye sobre la ventana completa, no sobre el lapso real
// entre ventas: 10 unidades en una ventana de 100 días son 0.1/día aunque
// todas se hayan vendido la misma semana.
func TestPredecirDemanda_TasaSobreVentanaCompleta(t *testing.T) {
	intel := &fakeIntelRepo{resumen: map[int64]repository.ResumenVentas{
		3: {NumVentas: 2, TotalVendido: 10},
	}}
	uc := motorDePrueba(newFakeProductoRepo(), intel, ahoraFija)

	pred, err := uc.PredecirDemanda(context.Background(), 3, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, pred.VentasPorDia, 1e-9)
	assert.Equal(t, 1, pred.PrediccionSemanal) // ceil(0.7)
	assert.Equal(t, 3, pred.PrediccionMensual) // ceil(3.0)
}

func TestPredecirDemanda_ErrorDeLectura(t *testing.T) {
	fallo := errors.New("conexión perdida")
	intel := &fakeIntelRepo{err: fallo}
	uc := motorDePrueba(newFakeProductoRepo(), intel, ahoraFija)

	_, err := uc.PredecirDemanda(context.Background(), 1, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, fallo, "la falla de lectura se propaga sin tragarse")
}

func TestCalcularPuntoReorden_ProductoInexistente(t *testing.T) {
	intel := &fakeIntelRepo{resumen: map[int64]repository.ResumenVentas{}}
	uc := motorDePrueba(newFakeProductoRepo(), intel, ahoraFija)

	_, err := uc.CalcularPuntoReorden(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Ejemplo completo: mínimo 10, stock 2, 30 unidades en 30 días.
func TestCalcularPuntoReorden_EjemploCompleto(t *testing.T) {
	producto := &entity.Producto{ID: 5, Nombre: "Martillo", StockActual: 2, StockMinimo: 10}
	intel := &fakeIntelRepo{resumen: map[int64]repository.ResumenVentas{
		5: {NumVentas: 15, TotalVendido: 30},
	}}
	uc := motorDePrueba(newFakeProductoRepo(producto), intel, ahoraFija)

	reorden, err := uc.CalcularPuntoReorden(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Martillo", reorden.Nombre)
	assert.InDelta(t, 1.0, reorden.DemandaDiaria, 1e-9)
	assert.Equal(t, 7, reorden.PuntoReorden) // ceil(1.0 * 7)
	assert.True(t, reorden.NecesitaReorden)  // 2 <= 7
	assert.Equal(t, 30, reorden.PrediccionMensual)
	assert.Equal(t, 34, reorden.CantidadSugerida) // ceil(30*1.2) - 2
	assert.InDelta(t, 2.0, reorden.DiasStockRestante, 1e-9)
}

// Sin demanda: punto de reorden cero, nada que sugerir, y los días de stock
// restante se calculan como si la demanda fuera 1/día (solo en ese cociente).
func TestCalcularPuntoReorden_SinDemanda(t *testing.T) {
	producto := &entity.Producto{ID: 8, Nombre: "Lija", StockActual: 5, StockMinimo: 10}
	intel := &fakeIntelRepo{resumen: map[int64]repository.ResumenVentas{}}
	uc := motorDePrueba(newFakeProductoRepo(producto), intel, ahoraFija)

	reorden, err := uc.CalcularPuntoReorden(context.Background(), 8)
	require.NoError(t, err)

	assert.Zero(t, reorden.PuntoReorden)
	assert.False(t, reorden.NecesitaReorden) // 5 <= 0 es falso
	assert.Zero(t, reorden.CantidadSugerida)
	assert.Zero(t, reorden.DemandaDiaria, "la tasa real sigue siendo cero")
	assert.InDelta(t, 5.0, reorden.DiasStockRestante, 1e-9)
}

// necesita_reorden es verdadero exactamente cuando stock <= punto de reorden,
// y cantidad_sugerida solo es positiva cuando se necesita.
func TestCalcularPuntoReorden_FronteraNecesitaReorden(t *testing.T) {
	intel := &fakeIntelRepo{resumen: map[int64]repository.ResumenVentas{
		1: {NumVentas: 10, TotalVendido: 30}, // 1/día -> punto de reorden 7
	}}

	cases := []struct {
		stock    int
		necesita bool
	}{
		{6, true},
		{7, true}, // frontera: igual también dispara
		{8, false},
	}
	for _, c := range cases {
		producto := &entity.Producto{ID: 1, Nombre: "Clavos", StockActual: c.stock, StockMinimo: 5}
		uc := motorDePrueba(newFakeProductoRepo(producto), intel, ahoraFija)

		reorden, err := uc.CalcularPuntoReorden(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, c.necesita, reorden.NecesitaReorden, "stock %d", c.stock)
		if !c.necesita {
			assert.Zero(t, reorden.CantidadSugerida)
		}
	}
}
