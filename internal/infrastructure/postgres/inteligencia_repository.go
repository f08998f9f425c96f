package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

var _ repository.InteligenciaRepository = (*InteligenciaRepo)(nil)

// InteligenciaRepo consultas de solo lectura que alimentan el motor de
// inventario inteligente.
type InteligenciaRepo struct {
	pool *pgxpool.Pool
}

// NewInteligenciaRepository construye el adaptador de analítica.
func NewInteligenciaRepository(pool *pgxpool.Pool) *InteligenciaRepo {
	return &InteligenciaRepo{pool: pool}
}

// ResumenVentas agrega transacciones y unidades de un producto desde la fecha
// dada. Sin ventas en la ventana devuelve ceros y fechas nil, nunca error.
func (r *InteligenciaRepo) ResumenVentas(ctx context.Context, productoID int64, desde time.Time) (repository.ResumenVentas, error) {
	const query = `
	SELECT
	    COUNT(*)                    AS num_ventas,
	    COALESCE(SUM(cantidad), 0)  AS total_vendido,
	    MIN(fecha_venta)            AS primera_venta,
	    MAX(fecha_venta)            AS ultima_venta
	FROM ventas
	WHERE producto_id = $1
	  AND fecha_venta >= $2`

	var resumen repository.ResumenVentas
	err := r.pool.QueryRow(ctx, query, productoID, desde).Scan(
		&resumen.NumVentas,
		&resumen.TotalVendido,
		&resumen.PrimeraVenta,
		&resumen.UltimaVenta,
	)
	if err != nil {
		return repository.ResumenVentas{}, fmt.Errorf("inteligencia.ResumenVentas: %w", err)
	}
	return resumen, nil
}

// ListBajoMinimo devuelve los productos en o bajo su stock mínimo con el
// volumen vendido desde la fecha dada. LEFT JOIN: los productos sin ventas
// recientes aparecen con volumen cero.
func (r *InteligenciaRepo) ListBajoMinimo(ctx context.Context, desde time.Time) ([]repository.ProductoBajoMinimo, error) {
	const query = `
	SELECT
	    p.id, p.nombre, p.descripcion, p.codigo_barras, p.precio,
	    p.stock_actual, p.stock_minimo, p.categoria, p.ubicacion, p.proveedor,
	    p.fecha_creacion, p.fecha_actualizacion,
	    COALESCE(SUM(v.cantidad), 0) AS ventas_ultimo_mes
	FROM productos p
	LEFT JOIN ventas v ON v.producto_id = p.id AND v.fecha_venta >= $1
	WHERE p.stock_actual <= p.stock_minimo
	GROUP BY p.id
	ORDER BY p.id`

	rows, err := r.pool.Query(ctx, query, desde)
	if err != nil {
		return nil, fmt.Errorf("inteligencia.ListBajoMinimo: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductoBajoMinimo
	for rows.Next() {
		var row repository.ProductoBajoMinimo
		p := &row.Producto
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.CodigoBarras, &p.Precio,
			&p.StockActual, &p.StockMinimo, &p.Categoria, &p.Ubicacion, &p.Proveedor,
			&p.FechaCreacion, &p.FechaActualizacion,
			&row.VentasUltimoMes,
		); err != nil {
			return nil, fmt.Errorf("inteligencia.ListBajoMinimo scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListConHistorial devuelve todo el catálogo con última venta y total
// histórico por producto. Sin ventana de tiempo: es la base del análisis de
// lento movimiento.
func (r *InteligenciaRepo) ListConHistorial(ctx context.Context) ([]repository.ProductoHistorial, error) {
	const query = `
	SELECT
	    p.id, p.nombre, p.descripcion, p.codigo_barras, p.precio,
	    p.stock_actual, p.stock_minimo, p.categoria, p.ubicacion, p.proveedor,
	    p.fecha_creacion, p.fecha_actualizacion,
	    MAX(v.fecha_venta)           AS ultima_venta,
	    COALESCE(SUM(v.cantidad), 0) AS ventas_totales
	FROM productos p
	LEFT JOIN ventas v ON v.producto_id = p.id
	GROUP BY p.id
	ORDER BY p.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("inteligencia.ListConHistorial: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductoHistorial
	for rows.Next() {
		var row repository.ProductoHistorial
		p := &row.Producto
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.CodigoBarras, &p.Precio,
			&p.StockActual, &p.StockMinimo, &p.Categoria, &p.Ubicacion, &p.Proveedor,
			&p.FechaCreacion, &p.FechaActualizacion,
			&row.UltimaVenta,
			&row.VentasTotales,
		); err != nil {
			return nil, fmt.Errorf("inteligencia.ListConHistorial scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ValorInventario agrega el catálogo completo en una fila. Usa COALESCE para
// devolver ceros con catálogo vacío (AVG de cero filas es NULL).
func (r *InteligenciaRepo) ValorInventario(ctx context.Context) (repository.ValorInventarioRow, error) {
	const query = `
	SELECT
	    COUNT(*)                                                       AS total_productos,
	    COALESCE(SUM(stock_actual), 0)                                 AS unidades_totales,
	    COALESCE(SUM(precio * stock_actual), 0)                        AS valor_total,
	    COALESCE(AVG(precio), 0)                                       AS precio_promedio,
	    COUNT(*) FILTER (WHERE stock_actual <= stock_minimo)           AS productos_bajo_stock
	FROM productos`

	var row repository.ValorInventarioRow
	err := r.pool.QueryRow(ctx, query).Scan(
		&row.TotalProductos,
		&row.UnidadesTotales,
		&row.ValorTotal,
		&row.PrecioPromedio,
		&row.ProductosBajoStock,
	)
	if err != nil {
		return repository.ValorInventarioRow{}, fmt.Errorf("inteligencia.ValorInventario: %w", err)
	}
	return row, nil
}

// ListRentables agrega ventas por producto desde la fecha dada, ordenadas por
// ingresos. INNER JOIN: un producto sin transacciones en la ventana no aparece
// aunque tenga historial más antiguo.
func (r *InteligenciaRepo) ListRentables(ctx context.Context, desde time.Time, limit int) ([]repository.ProductoVentas, error) {
	const query = `
	SELECT
	    p.id, p.nombre, p.descripcion, p.codigo_barras, p.precio,
	    p.stock_actual, p.stock_minimo, p.categoria, p.ubicacion, p.proveedor,
	    p.fecha_creacion, p.fecha_actualizacion,
	    COUNT(*)                 AS num_ventas,
	    SUM(v.cantidad)          AS unidades_vendidas,
	    SUM(v.total)             AS ingresos_totales,
	    AVG(v.precio_unitario)   AS precio_promedio_venta
	FROM ventas v
	JOIN productos p ON p.id = v.producto_id
	WHERE v.fecha_venta >= $1
	GROUP BY p.id
	ORDER BY ingresos_totales DESC, p.id ASC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, desde, limit)
	if err != nil {
		return nil, fmt.Errorf("inteligencia.ListRentables: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductoVentas
	for rows.Next() {
		var row repository.ProductoVentas
		p := &row.Producto
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.CodigoBarras, &p.Precio,
			&p.StockActual, &p.StockMinimo, &p.Categoria, &p.Ubicacion, &p.Proveedor,
			&p.FechaCreacion, &p.FechaActualizacion,
			&row.NumVentas,
			&row.UnidadesVendidas,
			&row.IngresosTotales,
			&row.PrecioPromedioVenta,
		); err != nil {
			return nil, fmt.Errorf("inteligencia.ListRentables scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
