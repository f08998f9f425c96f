package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
)

// ResumenDia totales agregados de las ventas de un día.
type ResumenDia struct {
	NumVentas        int
	UnidadesVendidas int
	IngresosTotales  decimal.Decimal
}

// VentaRepository puerto de persistencia de ventas. Las ventas son inmutables:
// solo se insertan y se consultan, nunca se actualizan.
type VentaRepository interface {
	Create(ctx context.Context, v *entity.Venta) error
	// GetByOfflineID devuelve (nil, nil) si ninguna venta tiene ese offline_id.
	GetByOfflineID(ctx context.Context, offlineID uuid.UUID) (*entity.Venta, error)
	ListByFecha(ctx context.Context, desde, hasta time.Time, limit, offset int) ([]*entity.Venta, error)
	ResumenDelDia(ctx context.Context, inicio, fin time.Time) (ResumenDia, error)
}
