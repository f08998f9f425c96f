package inteligencia

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
)

// GenerarAlertas revisa todo el catálogo y devuelve los productos en o bajo su
// stock mínimo, cada uno con nivel de severidad, volumen de los últimos 30 días
// y la recomendación de reorden anidada.
//
// Los sub-cálculos de reorden se lanzan en paralelo y se aíslan por producto:
// si uno falla, su alerta sale con ReordenInfo nil y el resto del lote sigue.
//
// Orden del resultado: ratio stock/mínimo ascendente; un stock mínimo de cero
// se trata como el peor caso y va primero (sin dividir entre cero); los empates
// se resuelven por id de producto.
func (uc *InteligenciaUseCase) GenerarAlertas(ctx context.Context) ([]dto.AlertaStockDTO, error) {
	desde := uc.now().AddDate(0, 0, -diasVentanaDemanda)

	filas, err := uc.intelRepo.ListBajoMinimo(ctx, desde)
	if err != nil {
		return nil, fmt.Errorf("generar alertas: %w", err)
	}

	alertas := make([]dto.AlertaStockDTO, len(filas))
	var wg sync.WaitGroup
	for i, fila := range filas {
		p := fila.Producto
		alertas[i] = dto.AlertaStockDTO{
			ProductoID:      p.ID,
			Nombre:          p.Nombre,
			CodigoBarras:    p.CodigoBarras,
			Precio:          p.Precio,
			StockActual:     p.StockActual,
			StockMinimo:     p.StockMinimo,
			Categoria:       p.Categoria,
			Proveedor:       p.Proveedor,
			VentasUltimoMes: fila.VentasUltimoMes,
			NivelAlerta:     nivelAlerta(p.StockActual, p.StockMinimo),
		}

		wg.Add(1)
		go func(i int, productoID int64) {
			defer wg.Done()
			reorden, err := uc.CalcularPuntoReorden(ctx, productoID)
			if err != nil {
				log.Warn().Err(err).
					Int64("producto_id", productoID).
					Msg("cálculo de reorden falló; la alerta sale sin reorden_info")
				return
			}
			alertas[i].ReordenInfo = reorden
		}(i, p.ID)
	}
	wg.Wait()

	sort.SliceStable(alertas, func(i, j int) bool {
		a, b := alertas[i], alertas[j]
		aSinMinimo, bSinMinimo := a.StockMinimo == 0, b.StockMinimo == 0
		if aSinMinimo != bSinMinimo {
			return aSinMinimo
		}
		if aSinMinimo && bSinMinimo {
			return a.ProductoID < b.ProductoID
		}
		ra := float64(a.StockActual) / float64(a.StockMinimo)
		rb := float64(b.StockActual) / float64(b.StockMinimo)
		if ra != rb {
			return ra < rb
		}
		return a.ProductoID < b.ProductoID
	})

	return alertas, nil
}

// nivelAlerta clasifica la severidad según el ratio stock actual / mínimo.
// Los cortes son cerrados por arriba: ratio exacto 0.25 sigue siendo crítico.
func nivelAlerta(stockActual, stockMinimo int) string {
	ratio := float64(stockActual) / float64(max(stockMinimo, 1))
	switch {
	case ratio <= 0.25:
		return dto.NivelCritico
	case ratio <= 0.5:
		return dto.NivelAlto
	case ratio <= 0.75:
		return dto.NivelMedio
	}
	return dto.NivelBajo
}
