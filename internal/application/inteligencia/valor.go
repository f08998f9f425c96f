package inteligencia

import (
	"context"
	"fmt"
	"sort"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
)

// CalcularValorInventario devuelve la valuación global del catálogo en una
// sola pasada: conteo, unidades, valor monetario (Σ precio × stock), precio
// promedio y productos en o bajo mínimo. Con catálogo vacío todos los campos
// son cero.
func (uc *InteligenciaUseCase) CalcularValorInventario(ctx context.Context) (*dto.ValorInventarioDTO, error) {
	fila, err := uc.intelRepo.ValorInventario(ctx)
	if err != nil {
		return nil, fmt.Errorf("valor de inventario: %w", err)
	}
	return &dto.ValorInventarioDTO{
		TotalProductos:     fila.TotalProductos,
		UnidadesTotales:    fila.UnidadesTotales,
		ValorTotal:         fila.ValorTotal,
		PrecioPromedio:     fila.PrecioPromedio,
		ProductosBajoStock: fila.ProductosBajoStock,
	}, nil
}

// ObtenerProductosRentables devuelve el ranking de productos por ingresos de
// los últimos 30 días, descendente. Solo entran productos con al menos una
// transacción en la ventana; el historial más antiguo no cuenta.
//
// Política del límite: se acota, nunca se rechaza (no positivo toma el default
// de 10, y por encima de 200 se recorta a 200). El parseo estricto del
// parámetro es responsabilidad de la capa HTTP.
func (uc *InteligenciaUseCase) ObtenerProductosRentables(
	ctx context.Context,
	limit int,
) ([]dto.ProductoRentableDTO, error) {
	if limit <= 0 {
		limit = limiteRentablesDefault
	}
	if limit > limiteRentablesMax {
		limit = limiteRentablesMax
	}

	desde := uc.now().AddDate(0, 0, -diasVentanaDemanda)
	filas, err := uc.intelRepo.ListRentables(ctx, desde, limit)
	if err != nil {
		return nil, fmt.Errorf("productos rentables: %w", err)
	}

	productos := make([]dto.ProductoRentableDTO, 0, len(filas))
	for _, fila := range filas {
		p := fila.Producto
		productos = append(productos, dto.ProductoRentableDTO{
			ProductoID:          p.ID,
			Nombre:              p.Nombre,
			Precio:              p.Precio,
			StockActual:         p.StockActual,
			Categoria:           p.Categoria,
			NumVentas:           fila.NumVentas,
			UnidadesVendidas:    fila.UnidadesVendidas,
			IngresosTotales:     fila.IngresosTotales,
			PrecioPromedioVenta: fila.PrecioPromedioVenta,
		})
	}

	sort.SliceStable(productos, func(i, j int) bool {
		cmp := productos[i].IngresosTotales.Cmp(productos[j].IngresosTotales)
		if cmp != 0 {
			return cmp > 0
		}
		return productos[i].ProductoID < productos[j].ProductoID
	})

	if len(productos) > limit {
		productos = productos[:limit]
	}
	return productos, nil
}
