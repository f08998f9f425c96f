package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
)

// ResumenVentas agregado de las ventas de un producto en una ventana de tiempo.
// Cuando no hubo ventas todos los campos numéricos son cero y las fechas nil.
type ResumenVentas struct {
	NumVentas    int
	TotalVendido int
	PrimeraVenta *time.Time
	UltimaVenta  *time.Time
}

// ProductoBajoMinimo producto en o bajo su stock mínimo, con el volumen vendido
// en los últimos 30 días (cero si no vendió nada; left join).
type ProductoBajoMinimo struct {
	Producto        entity.Producto
	VentasUltimoMes int
}

// ProductoHistorial producto con su historial de ventas de toda la vida.
// UltimaVenta es nil para productos que nunca se han vendido.
type ProductoHistorial struct {
	Producto      entity.Producto
	UltimaVenta   *time.Time
	VentasTotales int
}

// ValorInventarioRow agregado global del catálogo en una sola fila.
type ValorInventarioRow struct {
	TotalProductos     int
	UnidadesTotales    int
	ValorTotal         decimal.Decimal
	PrecioPromedio     decimal.Decimal
	ProductosBajoStock int
}

// ProductoVentas agregado de ventas por producto dentro de una ventana
// (inner join: solo productos con al menos una transacción).
type ProductoVentas struct {
	Producto            entity.Producto
	NumVentas           int
	UnidadesVendidas    int
	IngresosTotales     decimal.Decimal
	PrecioPromedioVenta decimal.Decimal
}

// InteligenciaRepository consultas de solo lectura que alimentan el motor de
// inventario inteligente. Las implementaciones no modifican datos; el motor
// tolera read skew (una venta confirmada a mitad de cálculo puede o no verse).
type InteligenciaRepository interface {
	// ResumenVentas agrega las ventas de un producto desde la fecha dada.
	ResumenVentas(ctx context.Context, productoID int64, desde time.Time) (ResumenVentas, error)

	// ListBajoMinimo devuelve los productos con stock_actual <= stock_minimo,
	// cada uno con su volumen vendido desde la fecha dada (left join; los
	// productos sin ventas aparecen con volumen cero).
	ListBajoMinimo(ctx context.Context, desde time.Time) ([]ProductoBajoMinimo, error)

	// ListConHistorial devuelve todos los productos con su última venta y el
	// total histórico vendido (left join, sin ventana de tiempo).
	ListConHistorial(ctx context.Context) ([]ProductoHistorial, error)

	// ValorInventario devuelve los agregados globales del catálogo.
	// Catálogo vacío produce ceros, nunca error.
	ValorInventario(ctx context.Context) (ValorInventarioRow, error)

	// ListRentables agrega transacciones, unidades e ingresos por producto
	// desde la fecha dada. Inner join: excluye productos sin transacciones en
	// la ventana aunque tengan historial más antiguo.
	ListRentables(ctx context.Context, desde time.Time, limit int) ([]ProductoVentas, error)
}
