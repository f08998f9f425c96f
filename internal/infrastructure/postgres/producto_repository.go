package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tlapasoft/tlapaleria-api/internal/domain"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
	"github.com/tlapasoft/tlapaleria-api/pkg/texto"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, nombre, descripcion, codigo_barras, precio, stock_actual, stock_minimo,
	categoria, ubicacion, proveedor, fecha_creacion, fecha_actualizacion`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	p, err := scanProducto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByCodigoBarras obtiene un producto por código de barras.
func (r *ProductoRepo) GetByCodigoBarras(ctx context.Context, codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE codigo_barras = $1`
	p, err := scanProducto(r.q.QueryRow(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto por código: %w", err)
	}
	return p, nil
}

// List devuelve el catálogo con filtros opcionales. Categoría y bajo stock se
// filtran en SQL; la búsqueda por texto se aplica en memoria con normalización
// de acentos (el catálogo de una tlapalería cabe de sobra en un query).
func (r *ProductoRepo) List(ctx context.Context, filter repository.ProductoFilter) ([]*entity.Producto, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + productoColumns + ` FROM productos`)

	var conds []string
	var args []any
	if filter.Categoria != "" {
		args = append(args, filter.Categoria)
		conds = append(conds, fmt.Sprintf("categoria = $%d", len(args)))
	}
	if filter.BajoStock {
		conds = append(conds, "stock_actual <= stock_minimo")
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY nombre ASC, id ASC")

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list productos rows: %w", err)
	}

	if filter.Buscar != "" {
		list = filtrarPorTexto(list, filter.Buscar)
	}
	return list, nil
}

// filtrarPorTexto busca términos sin distinguir mayúsculas ni acentos, para
// que "tornilleria" encuentre "Tornillería".
func filtrarPorTexto(productos []*entity.Producto, buscar string) []*entity.Producto {
	termino := texto.Normalizar(buscar)
	var out []*entity.Producto
	for _, p := range productos {
		if strings.Contains(texto.Normalizar(p.Nombre), termino) ||
			strings.Contains(texto.Normalizar(p.Descripcion), termino) ||
			(p.CodigoBarras != nil && strings.Contains(texto.Normalizar(*p.CodigoBarras), termino)) {
			out = append(out, p)
		}
	}
	return out
}

// Create inserta un producto y asigna el ID generado.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, descripcion, codigo_barras, precio, stock_actual, stock_minimo,
			categoria, ubicacion, proveedor, fecha_creacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.Descripcion, p.CodigoBarras, p.Precio, p.StockActual, p.StockMinimo,
		p.Categoria, p.Ubicacion, p.Proveedor, p.FechaCreacion, p.FechaActualizacion,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("código de barras ya registrado: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// Update actualiza todos los campos editables del producto.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, codigo_barras = $4, precio = $5,
			stock_actual = $6, stock_minimo = $7, categoria = $8, ubicacion = $9, proveedor = $10,
			fecha_actualizacion = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Descripcion, p.CodigoBarras, p.Precio,
		p.StockActual, p.StockMinimo, p.Categoria, p.Ubicacion, p.Proveedor,
		p.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("código de barras ya registrado: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("producto %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DescontarStock resta unidades de forma atómica. El WHERE evita que el stock
// quede negativo aunque dos cajas vendan el mismo producto a la vez.
func (r *ProductoRepo) DescontarStock(ctx context.Context, id int64, cantidad int) error {
	query := `
		UPDATE productos
		SET stock_actual = stock_actual - $2, fecha_actualizacion = now()
		WHERE id = $1 AND stock_actual >= $2`
	cmd, err := r.q.Exec(ctx, query, id, cantidad)
	if err != nil {
		return fmt.Errorf("descontar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("stock disponible %d, pedido %d: %w", p.StockActual, cantidad, domain.ErrInsufficientStock)
	}
	return nil
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.CodigoBarras, &p.Precio,
		&p.StockActual, &p.StockMinimo, &p.Categoria, &p.Ubicacion, &p.Proveedor,
		&p.FechaCreacion, &p.FechaActualizacion,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
