package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
	"github.com/tlapasoft/tlapaleria-api/internal/domain"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción; los repositorios que recibe
// fn operan sobre esa misma transacción. Si fn devuelve error se hace rollback.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(productos repository.ProductoRepository, ventas repository.VentaRepository) error) error
}

// VentaUseCase registra ventas y consulta el historial.
type VentaUseCase struct {
	tx        TxRunner
	ventaRepo repository.VentaRepository
	now       func() time.Time
}

// NewVentaUseCase construye el caso de uso de ventas.
func NewVentaUseCase(tx TxRunner, ventaRepo repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{tx: tx, ventaRepo: ventaRepo, now: time.Now}
}

// Registrar descuenta stock e inserta la venta en una sola transacción.
// Si la venta trae offline_id y ya fue registrada antes, devuelve la venta
// original sin tocar el stock: el cliente móvil puede reenviar su cola sin
// miedo a duplicar.
func (uc *VentaUseCase) Registrar(ctx context.Context, usuarioID int64, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if req.ProductoID <= 0 {
		return nil, fmt.Errorf("producto_id inválido: %w", domain.ErrInvalidInput)
	}
	if req.Cantidad <= 0 {
		return nil, fmt.Errorf("la cantidad debe ser mayor a cero: %w", domain.ErrInvalidInput)
	}
	if !req.PrecioUnitario.IsPositive() {
		return nil, fmt.Errorf("el precio unitario debe ser mayor a cero: %w", domain.ErrInvalidInput)
	}

	if req.OfflineID != nil {
		previa, err := uc.ventaRepo.GetByOfflineID(ctx, *req.OfflineID)
		if err != nil {
			return nil, fmt.Errorf("consultando offline_id %s: %w", req.OfflineID, err)
		}
		if previa != nil {
			return toVentaResponse(previa), nil
		}
	}

	venta := &entity.Venta{
		ProductoID:     req.ProductoID,
		UsuarioID:      usuarioID,
		Cantidad:       req.Cantidad,
		PrecioUnitario: req.PrecioUnitario,
		Total:          req.PrecioUnitario.Mul(decimal.NewFromInt(int64(req.Cantidad))),
		FechaVenta:     uc.now(),
		OfflineID:      req.OfflineID,
	}

	err := uc.tx.RunInTx(ctx, func(productos repository.ProductoRepository, ventas repository.VentaRepository) error {
		p, err := productos.GetByID(ctx, req.ProductoID)
		if err != nil {
			return fmt.Errorf("consultando producto %d: %w", req.ProductoID, err)
		}
		if p == nil {
			return fmt.Errorf("producto %d: %w", req.ProductoID, domain.ErrNotFound)
		}
		if err := productos.DescontarStock(ctx, req.ProductoID, req.Cantidad); err != nil {
			return fmt.Errorf("descontando stock del producto %d: %w", req.ProductoID, err)
		}
		return ventas.Create(ctx, venta)
	})
	if err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// Listar devuelve las ventas de un rango de fechas, paginadas.
func (uc *VentaUseCase) Listar(ctx context.Context, desde, hasta time.Time, limit, offset int) ([]dto.VentaResponse, error) {
	if hasta.Before(desde) {
		return nil, fmt.Errorf("el rango de fechas está invertido: %w", domain.ErrInvalidInput)
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	ventas, err := uc.ventaRepo.ListByFecha(ctx, desde, hasta, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listando ventas: %w", err)
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, *toVentaResponse(v))
	}
	return out, nil
}

// EstadisticasDelDia agrega las ventas del día en curso en hora local.
func (uc *VentaUseCase) EstadisticasDelDia(ctx context.Context) (*dto.EstadisticasDiaDTO, error) {
	ahora := uc.now()
	inicio := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	fin := inicio.AddDate(0, 0, 1)

	resumen, err := uc.ventaRepo.ResumenDelDia(ctx, inicio, fin)
	if err != nil {
		return nil, fmt.Errorf("resumen del día: %w", err)
	}
	return &dto.EstadisticasDiaDTO{
		Fecha:            inicio.Format("2006-01-02"),
		NumVentas:        resumen.NumVentas,
		UnidadesVendidas: resumen.UnidadesVendidas,
		IngresosTotales:  resumen.IngresosTotales,
	}, nil
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	return &dto.VentaResponse{
		ID:             v.ID,
		ProductoID:     v.ProductoID,
		UsuarioID:      v.UsuarioID,
		Cantidad:       v.Cantidad,
		PrecioUnitario: v.PrecioUnitario,
		Total:          v.Total,
		FechaVenta:     v.FechaVenta,
		OfflineID:      v.OfflineID,
	}
}
