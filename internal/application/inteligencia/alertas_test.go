package inteligencia

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

// Los cortes de severidad son cerrados por arriba: el ratio exacto del corte
// pertenece al bucket más severo.
func TestNivelAlerta_Cortes(t *testing.T) {
	cases := []struct {
		stock, minimo int
		nivel         string
	}{
		{0, 10, dto.NivelCritico},
		{1, 4, dto.NivelCritico}, // ratio exacto 0.25
		{2, 4, dto.NivelAlto},    // ratio exacto 0.5
		{3, 4, dto.NivelMedio},   // ratio exacto 0.75
		{4, 4, dto.NivelBajo},    // ratio 1.0
		{0, 0, dto.NivelCritico}, // mínimo cero no divide entre cero
	}
	for _, c := range cases {
		assert.Equal(t, c.nivel, nivelAlerta(c.stock, c.minimo),
			"stock=%d minimo=%d", c.stock, c.minimo)
	}
}

func TestGenerarAlertas_OrdenYMinimoCero(t *testing.T) {
	pSinMinimo := entity.Producto{ID: 3, Nombre: "Brocha", StockActual: 0, StockMinimo: 0}
	pCritico := entity.Producto{ID: 1, Nombre: "Pintura", StockActual: 2, StockMinimo: 10}
	pBajo := entity.Producto{ID: 2, Nombre: "Tornillos", StockActual: 8, StockMinimo: 10}

	intel := &fakeIntelRepo{
		bajoMinimo: []repository.ProductoBajoMinimo{
			{Producto: pCritico, VentasUltimoMes: 30},
			{Producto: pBajo, VentasUltimoMes: 4},
			{Producto: pSinMinimo},
		},
		resumen: map[int64]repository.ResumenVentas{
			1: {NumVentas: 15, TotalVendido: 30},
		},
	}
	productos := newFakeProductoRepo(&pSinMinimo, &pCritico, &pBajo)
	uc := motorDePrueba(productos, intel, ahoraFija)

	alertas, err := uc.GenerarAlertas(context.Background())
	require.NoError(t, err)
	require.Len(t, alertas, 3)

	// Mínimo cero primero (peor caso), luego ratio ascendente.
	assert.Equal(t, int64(3), alertas[0].ProductoID)
	assert.Equal(t, dto.NivelCritico, alertas[0].NivelAlerta)
	assert.Equal(t, int64(1), alertas[1].ProductoID)
	assert.Equal(t, dto.NivelCritico, alertas[1].NivelAlerta) // 2/10 = 0.2
	assert.Equal(t, int64(2), alertas[2].ProductoID)
	assert.Equal(t, dto.NivelBajo, alertas[2].NivelAlerta) // 8/10 = 0.8

	// Cada alerta lleva su recomendación de reorden anidada.
	for _, a := range alertas {
		require.NotNil(t, a.ReordenInfo, "producto %d", a.ProductoID)
		assert.Equal(t, a.ProductoID, a.ReordenInfo.ProductoID)
	}
	assert.Equal(t, 7, alertas[1].ReordenInfo.PuntoReorden)
	assert.Equal(t, 30, alertas[1].VentasUltimoMes)
}

// La falla del sub-cálculo de un producto no bloquea el lote: esa alerta sale
// con reorden_info nil y las demás completas.
func TestGenerarAlertas_AislamientoDeFallas(t *testing.T) {
	pA := entity.Producto{ID: 1, Nombre: "Taladro", StockActual: 1, StockMinimo: 5}
	pB := entity.Producto{ID: 2, Nombre: "Serrucho", StockActual: 2, StockMinimo: 5}

	intel := &fakeIntelRepo{
		bajoMinimo: []repository.ProductoBajoMinimo{
			{Producto: pA}, {Producto: pB},
		},
		resumen: map[int64]repository.ResumenVentas{},
	}
	productos := newFakeProductoRepo(&pA, &pB)
	productos.errByID[2] = errors.New("lectura fallida")
	uc := motorDePrueba(productos, intel, ahoraFija)

	alertas, err := uc.GenerarAlertas(context.Background())
	require.NoError(t, err, "una falla por producto no es falla del lote")
	require.Len(t, alertas, 2)

	porID := map[int64]dto.AlertaStockDTO{}
	for _, a := range alertas {
		porID[a.ProductoID] = a
	}
	assert.NotNil(t, porID[1].ReordenInfo)
	assert.Nil(t, porID[2].ReordenInfo)
}

func TestGenerarAlertas_CatalogoSano(t *testing.T) {
	intel := &fakeIntelRepo{}
	uc := motorDePrueba(newFakeProductoRepo(), intel, ahoraFija)

	alertas, err := uc.GenerarAlertas(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alertas)
}

// Los sub-cálculos de reorden corren en paralelo; un lote ancho debe salir
// completo y sin carreras sobre el repositorio compartido.
func TestGenerarAlertas_LoteAncho(t *testing.T) {
	const n = 40

	filas := make([]repository.ProductoBajoMinimo, 0, n)
	catalogo := make([]*entity.Producto, 0, n)
	for i := int64(1); i <= n; i++ {
		p := entity.Producto{
			ID:          i,
			Nombre:      fmt.Sprintf("Producto %d", i),
			StockActual: 1,
			StockMinimo: 10,
		}
		filas = append(filas, repository.ProductoBajoMinimo{Producto: p})
		catalogo = append(catalogo, &p)
	}

	intel := &fakeIntelRepo{
		bajoMinimo: filas,
		resumen:    map[int64]repository.ResumenVentas{},
	}
	uc := motorDePrueba(newFakeProductoRepo(catalogo...), intel, ahoraFija)

	alertas, err := uc.GenerarAlertas(context.Background())
	require.NoError(t, err)
	require.Len(t, alertas, n)
	for _, a := range alertas {
		require.NotNil(t, a.ReordenInfo, "producto %d", a.ProductoID)
		assert.Equal(t, a.ProductoID, a.ReordenInfo.ProductoID)
	}
	assert.Equal(t, ahoraFija.AddDate(0, 0, -30), intel.verUltimoDesde())
}
