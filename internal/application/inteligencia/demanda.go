package inteligencia

import (
	"context"
	"fmt"
	"math"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
	"github.com/tlapasoft/tlapaleria-api/internal/domain"
)

// PredecirDemanda proyecta la demanda de un producto a partir de sus ventas en
// la ventana de días indicada (acotada a [1, 365]; cero toma el default de 30).
//
// La tasa diaria se calcula sobre la ventana solicitada completa, no sobre el
// lapso entre la primera y la última venta: un historial disperso produce una
// tasa diluida. Un producto sin ventas en la ventana devuelve todos los campos
// derivados en cero, nunca un error.
func (uc *InteligenciaUseCase) PredecirDemanda(
	ctx context.Context,
	productoID int64,
	dias int,
) (*dto.PrediccionDemandaDTO, error) {
	diasValidados := clampDias(dias)
	desde := uc.now().AddDate(0, 0, -diasValidados)

	resumen, err := uc.intelRepo.ResumenVentas(ctx, productoID, desde)
	if err != nil {
		return nil, fmt.Errorf("predecir demanda: %w", err)
	}

	ventasPorDia := float64(resumen.TotalVendido) / float64(diasValidados)

	var promedioPorVenta float64
	if resumen.NumVentas > 0 {
		promedioPorVenta = float64(resumen.TotalVendido) / float64(resumen.NumVentas)
	}

	return &dto.PrediccionDemandaDTO{
		ProductoID:          productoID,
		PeriodoAnalizado:    diasValidados,
		VentasTotales:       resumen.TotalVendido,
		NumeroTransacciones: resumen.NumVentas,
		PromedioPorVenta:    promedioPorVenta,
		VentasPorDia:        ventasPorDia,
		PrediccionSemanal:   int(math.Ceil(ventasPorDia * 7)),
		PrediccionMensual:   int(math.Ceil(ventasPorDia * 30)),
		PrimeraVenta:        resumen.PrimeraVenta,
		UltimaVenta:         resumen.UltimaVenta,
	}, nil
}

// CalcularPuntoReorden calcula la recomendación de reposición de un producto
// sobre una ventana fija de 30 días de demanda.
//
// Devuelve domain.ErrNotFound si el producto no existe. Los casos límite
// aritméticos están cubiertos: con demanda cero el punto de reorden es cero y
// los días de stock restante se calculan como si la demanda fuera 1 unidad/día
// (solo en ese cociente; VentasPorDia conserva su valor real).
func (uc *InteligenciaUseCase) CalcularPuntoReorden(
	ctx context.Context,
	productoID int64,
) (*dto.PuntoReordenDTO, error) {
	producto, err := uc.productoRepo.GetByID(ctx, productoID)
	if err != nil {
		return nil, fmt.Errorf("punto de reorden: %w", err)
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}

	demanda, err := uc.PredecirDemanda(ctx, productoID, diasVentanaDemanda)
	if err != nil {
		return nil, err
	}

	puntoReorden := int(math.Ceil(demanda.VentasPorDia * diasStockSeguridad))
	cantidadOptima := int(math.Ceil(float64(demanda.PrediccionMensual) * factorBufferReorden))

	necesitaReorden := producto.StockActual <= puntoReorden
	cantidadSugerida := 0
	if necesitaReorden {
		cantidadSugerida = max(cantidadOptima-producto.StockActual, 0)
	}

	return &dto.PuntoReordenDTO{
		ProductoID:        productoID,
		Nombre:            producto.Nombre,
		StockActual:       producto.StockActual,
		StockMinimo:       producto.StockMinimo,
		PuntoReorden:      puntoReorden,
		NecesitaReorden:   necesitaReorden,
		CantidadSugerida:  cantidadSugerida,
		DemandaDiaria:     demanda.VentasPorDia,
		PrediccionMensual: demanda.PrediccionMensual,
		DiasStockRestante: float64(producto.StockActual) / math.Max(demanda.VentasPorDia, 1),
	}, nil
}
