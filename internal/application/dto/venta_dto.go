package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegistrarVentaRequest registro de una venta. OfflineID lo manda el cliente
// móvil al reenviar su cola offline; repetirlo no duplica la venta.
type RegistrarVentaRequest struct {
	ProductoID     int64           `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	OfflineID      *uuid.UUID      `json:"offline_id"`
}

// VentaResponse representación JSON de una venta.
type VentaResponse struct {
	ID             int64           `json:"id"`
	ProductoID     int64           `json:"producto_id"`
	UsuarioID      int64           `json:"usuario_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
	FechaVenta     time.Time       `json:"fecha_venta"`
	OfflineID      *uuid.UUID      `json:"offline_id,omitempty"`
}

// EstadisticasDiaDTO totales de ventas del día.
type EstadisticasDiaDTO struct {
	Fecha            string          `json:"fecha"`
	NumVentas        int             `json:"num_ventas"`
	UnidadesVendidas int             `json:"unidades_vendidas"`
	IngresosTotales  decimal.Decimal `json:"ingresos_totales"`
}
