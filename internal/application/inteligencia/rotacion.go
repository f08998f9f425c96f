package inteligencia

import (
	"context"
	"fmt"
	"sort"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
)

// Recomendaciones por días sin venta, evaluadas de mayor a menor.
const (
	recomendacionLiquidar  = "Considerar descontinuar o hacer liquidación"
	recomendacionAgresivo  = "Aplicar descuento agresivo para mover inventario"
	recomendacionPromocion = "Promocionar o aplicar descuento moderado"
	recomendacionMonitoreo = "Monitorear de cerca"
)

// AnalizarLentoMovimiento devuelve los productos con más de `dias` días sin
// venderse (default 60 si el umbral no es positivo), revisando el historial
// completo, sin ventana de tiempo.
//
// Un producto que nunca se ha vendido califica siempre, con última venta y
// días sin venta en nil, y se ordena antes que cualquier producto con fecha.
// El resto va por días sin venta descendente, empates por id de producto.
func (uc *InteligenciaUseCase) AnalizarLentoMovimiento(
	ctx context.Context,
	dias int,
) ([]dto.LentoMovimientoDTO, error) {
	if dias <= 0 {
		dias = diasLentoMovimientoDefault
	}

	filas, err := uc.intelRepo.ListConHistorial(ctx)
	if err != nil {
		return nil, fmt.Errorf("lento movimiento: %w", err)
	}

	ahora := uc.now()
	productos := make([]dto.LentoMovimientoDTO, 0, len(filas))
	for _, fila := range filas {
		var diasSinVenta *int
		if fila.UltimaVenta != nil {
			d := int(ahora.Sub(*fila.UltimaVenta).Hours() / 24)
			if d <= dias {
				continue
			}
			diasSinVenta = &d
		}

		p := fila.Producto
		productos = append(productos, dto.LentoMovimientoDTO{
			ProductoID:    p.ID,
			Nombre:        p.Nombre,
			Precio:        p.Precio,
			StockActual:   p.StockActual,
			Categoria:     p.Categoria,
			Proveedor:     p.Proveedor,
			UltimaVenta:   fila.UltimaVenta,
			VentasTotales: fila.VentasTotales,
			DiasSinVenta:  diasSinVenta,
			Recomendacion: recomendacionLentoMovimiento(diasSinVenta),
		})
	}

	sort.SliceStable(productos, func(i, j int) bool {
		a, b := productos[i], productos[j]
		if (a.DiasSinVenta == nil) != (b.DiasSinVenta == nil) {
			return a.DiasSinVenta == nil
		}
		if a.DiasSinVenta == nil && b.DiasSinVenta == nil {
			return a.ProductoID < b.ProductoID
		}
		if *a.DiasSinVenta != *b.DiasSinVenta {
			return *a.DiasSinVenta > *b.DiasSinVenta
		}
		return a.ProductoID < b.ProductoID
	})

	return productos, nil
}

// recomendacionLentoMovimiento asigna el nivel de acción por días sin venta,
// de mayor a menor, primera coincidencia gana. Sin fecha de última venta no
// hay días acumulados y la recomendación queda en monitoreo.
func recomendacionLentoMovimiento(diasSinVenta *int) string {
	d := 0
	if diasSinVenta != nil {
		d = *diasSinVenta
	}
	switch {
	case d > 180:
		return recomendacionLiquidar
	case d > 120:
		return recomendacionAgresivo
	case d > 60:
		return recomendacionPromocion
	}
	return recomendacionMonitoreo
}
