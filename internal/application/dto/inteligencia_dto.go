package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de alerta de stock, de peor a mejor.
const (
	NivelCritico = "critico"
	NivelAlto    = "alto"
	NivelMedio   = "medio"
	NivelBajo    = "bajo"
)

// PrediccionDemandaDTO resultado de la predicción de demanda de un producto.
// PeriodoAnalizado es la ventana efectiva ya acotada a [1, 365] días.
type PrediccionDemandaDTO struct {
	ProductoID          int64      `json:"producto_id"`
	PeriodoAnalizado    int        `json:"periodo_analizado"`
	VentasTotales       int        `json:"ventas_totales"`
	NumeroTransacciones int        `json:"numero_transacciones"`
	PromedioPorVenta    float64    `json:"promedio_por_venta"`
	VentasPorDia        float64    `json:"ventas_por_dia"`
	PrediccionSemanal   int        `json:"prediccion_semanal"`
	PrediccionMensual   int        `json:"prediccion_mensual"`
	PrimeraVenta        *time.Time `json:"primera_venta"`
	UltimaVenta         *time.Time `json:"ultima_venta"`
}

// PuntoReordenDTO recomendación de reposición de un producto.
type PuntoReordenDTO struct {
	ProductoID        int64   `json:"producto_id"`
	Nombre            string  `json:"nombre"`
	StockActual       int     `json:"stock_actual"`
	StockMinimo       int     `json:"stock_minimo"`
	PuntoReorden      int     `json:"punto_reorden"`
	NecesitaReorden   bool    `json:"necesita_reorden"`
	CantidadSugerida  int     `json:"cantidad_sugerida"`
	DemandaDiaria     float64 `json:"demanda_diaria"`
	PrediccionMensual int     `json:"prediccion_mensual"`
	DiasStockRestante float64 `json:"dias_stock_restante"`
}

// AlertaStockDTO producto en o bajo su stock mínimo, con nivel de severidad y
// la recomendación de reorden anidada. ReordenInfo es nil si ese cálculo falló
// (la falla de un producto no bloquea el lote).
type AlertaStockDTO struct {
	ProductoID      int64            `json:"producto_id"`
	Nombre          string           `json:"nombre"`
	CodigoBarras    *string          `json:"codigo_barras"`
	Precio          decimal.Decimal  `json:"precio"`
	StockActual     int              `json:"stock_actual"`
	StockMinimo     int              `json:"stock_minimo"`
	Categoria       string           `json:"categoria"`
	Proveedor       string           `json:"proveedor"`
	VentasUltimoMes int              `json:"ventas_ultimo_mes"`
	NivelAlerta     string           `json:"nivel_alerta"`
	ReordenInfo     *PuntoReordenDTO `json:"reorden_info"`
}

// AlertasResponse envoltorio del lote de alertas.
type AlertasResponse struct {
	Total   int              `json:"total"`
	Alertas []AlertaStockDTO `json:"alertas"`
}

// LentoMovimientoDTO producto con ventas estancadas. UltimaVenta y DiasSinVenta
// son nil para productos que nunca se han vendido.
type LentoMovimientoDTO struct {
	ProductoID    int64           `json:"producto_id"`
	Nombre        string          `json:"nombre"`
	Precio        decimal.Decimal `json:"precio"`
	StockActual   int             `json:"stock_actual"`
	Categoria     string          `json:"categoria"`
	Proveedor     string          `json:"proveedor"`
	UltimaVenta   *time.Time      `json:"ultima_venta"`
	VentasTotales int             `json:"ventas_totales"`
	DiasSinVenta  *int            `json:"dias_sin_venta"`
	Recomendacion string          `json:"recomendacion"`
}

// LentoMovimientoResponse envoltorio del análisis de lento movimiento.
type LentoMovimientoResponse struct {
	Total        int                  `json:"total"`
	DiasAnalisis int                  `json:"dias_analisis"`
	Productos    []LentoMovimientoDTO `json:"productos"`
}

// ValorInventarioDTO valuación global del inventario.
type ValorInventarioDTO struct {
	TotalProductos     int             `json:"total_productos"`
	UnidadesTotales    int             `json:"unidades_totales"`
	ValorTotal         decimal.Decimal `json:"valor_total"`
	PrecioPromedio     decimal.Decimal `json:"precio_promedio"`
	ProductosBajoStock int             `json:"productos_bajo_stock"`
}

// ProductoRentableDTO producto del ranking de rentabilidad (últimos 30 días).
type ProductoRentableDTO struct {
	ProductoID          int64           `json:"producto_id"`
	Nombre              string          `json:"nombre"`
	Precio              decimal.Decimal `json:"precio"`
	StockActual         int             `json:"stock_actual"`
	Categoria           string          `json:"categoria"`
	NumVentas           int             `json:"num_ventas"`
	UnidadesVendidas    int             `json:"unidades_vendidas"`
	IngresosTotales     decimal.Decimal `json:"ingresos_totales"`
	PrecioPromedioVenta decimal.Decimal `json:"precio_promedio_venta"`
}

// RentablesResponse envoltorio del ranking de rentabilidad.
type RentablesResponse struct {
	Total     int                   `json:"total"`
	Productos []ProductoRentableDTO `json:"productos"`
}
