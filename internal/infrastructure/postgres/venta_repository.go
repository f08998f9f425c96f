package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tlapasoft/tlapaleria-api/internal/domain"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, producto_id, usuario_id, cantidad, precio_unitario, total, fecha_venta, offline_id`

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create inserta una venta y asigna el ID generado.
func (r *VentaRepo) Create(ctx context.Context, v *entity.Venta) error {
	query := `
		INSERT INTO ventas (producto_id, usuario_id, cantidad, precio_unitario, total, fecha_venta, offline_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		v.ProductoID, v.UsuarioID, v.Cantidad, v.PrecioUnitario, v.Total, v.FechaVenta, v.OfflineID,
	).Scan(&v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("offline_id ya registrado: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByOfflineID busca una venta por su identificador de cola offline.
// Devuelve (nil, nil) si ninguna venta lo tiene.
func (r *VentaRepo) GetByOfflineID(ctx context.Context, offlineID uuid.UUID) (*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE offline_id = $1`
	v, err := scanVenta(r.q.QueryRow(ctx, query, offlineID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta por offline_id: %w", err)
	}
	return v, nil
}

// ListByFecha devuelve las ventas con fecha_venta en [desde, hasta), más
// recientes primero.
func (r *VentaRepo) ListByFecha(ctx context.Context, desde, hasta time.Time, limit, offset int) ([]*entity.Venta, error) {
	query := `
		SELECT ` + ventaColumns + `
		FROM ventas
		WHERE fecha_venta >= $1 AND fecha_venta < $2
		ORDER BY fecha_venta DESC, id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, desde, hasta, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Venta
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// ResumenDelDia agrega las ventas de [inicio, fin). COALESCE devuelve ceros
// en días sin ventas.
func (r *VentaRepo) ResumenDelDia(ctx context.Context, inicio, fin time.Time) (repository.ResumenDia, error) {
	const query = `
		SELECT
		    COUNT(*)                    AS num_ventas,
		    COALESCE(SUM(cantidad), 0)  AS unidades_vendidas,
		    COALESCE(SUM(total), 0)     AS ingresos_totales
		FROM ventas
		WHERE fecha_venta >= $1 AND fecha_venta < $2`

	var resumen repository.ResumenDia
	err := r.q.QueryRow(ctx, query, inicio, fin).
		Scan(&resumen.NumVentas, &resumen.UnidadesVendidas, &resumen.IngresosTotales)
	if err != nil {
		return repository.ResumenDia{}, fmt.Errorf("resumen del día: %w", err)
	}
	return resumen, nil
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	err := row.Scan(
		&v.ID, &v.ProductoID, &v.UsuarioID, &v.Cantidad,
		&v.PrecioUnitario, &v.Total, &v.FechaVenta, &v.OfflineID,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
