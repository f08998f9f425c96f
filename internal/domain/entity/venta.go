package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta es un registro inmutable de venta: una vez creado no se edita.
// Es la única señal que usa el motor de inventario para inferir demanda.
//
// OfflineID lo asigna el cliente móvil cuando registra la venta sin conexión;
// al reenviar la cola el servidor lo usa como llave de idempotencia.
type Venta struct {
	ID             int64
	ProductoID     int64
	UsuarioID      int64
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal
	FechaVenta     time.Time
	OfflineID      *uuid.UUID
}
