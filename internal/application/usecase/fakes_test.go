package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tlapasoft/tlapaleria-api/internal/domain"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

// fakeProductoRepo catálogo en memoria.
type fakeProductoRepo struct {
	productos map[int64]*entity.Producto
	nextID    int64

	createErr error
	updateErr error
}

func newFakeProductoRepo(productos ...*entity.Producto) *fakeProductoRepo {
	m := make(map[int64]*entity.Producto, len(productos))
	var maxID int64
	for _, p := range productos {
		m[p.ID] = p
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return &fakeProductoRepo{productos: m, nextID: maxID + 1}
}

func (f *fakeProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	return f.productos[id], nil
}

func (f *fakeProductoRepo) GetByCodigoBarras(_ context.Context, codigo string) (*entity.Producto, error) {
	for _, p := range f.productos {
		if p.CodigoBarras != nil && *p.CodigoBarras == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductoRepo) List(context.Context, repository.ProductoFilter) ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(f.productos))
	for _, p := range f.productos {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductoRepo) Create(_ context.Context, p *entity.Producto) error {
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = f.nextID
	f.nextID++
	f.productos[p.ID] = p
	return nil
}

func (f *fakeProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.productos[p.ID] = p
	return nil
}

func (f *fakeProductoRepo) Delete(_ context.Context, id int64) error {
	delete(f.productos, id)
	return nil
}

func (f *fakeProductoRepo) DescontarStock(_ context.Context, id int64, cantidad int) error {
	p, ok := f.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.StockActual < cantidad {
		return domain.ErrInsufficientStock
	}
	p.StockActual -= cantidad
	return nil
}

// fakeVentaRepo ventas en memoria con índice por offline_id.
type fakeVentaRepo struct {
	ventas  []*entity.Venta
	nextID  int64
	resumen repository.ResumenDia

	createErr error
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{nextID: 1}
}

func (f *fakeVentaRepo) Create(_ context.Context, v *entity.Venta) error {
	if f.createErr != nil {
		return f.createErr
	}
	v.ID = f.nextID
	f.nextID++
	f.ventas = append(f.ventas, v)
	return nil
}

func (f *fakeVentaRepo) GetByOfflineID(_ context.Context, offlineID uuid.UUID) (*entity.Venta, error) {
	for _, v := range f.ventas {
		if v.OfflineID != nil && *v.OfflineID == offlineID {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVentaRepo) ListByFecha(_ context.Context, desde, hasta time.Time, limit, offset int) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range f.ventas {
		if !v.FechaVenta.Before(desde) && v.FechaVenta.Before(hasta) {
			out = append(out, v)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeVentaRepo) ResumenDelDia(context.Context, time.Time, time.Time) (repository.ResumenDia, error) {
	return f.resumen, nil
}

// fakeTxRunner pasa los repos tal cual; si fn falla, deshace los cambios de
// stock reaplicando la copia tomada antes de ejecutar.
type fakeTxRunner struct {
	productos *fakeProductoRepo
	ventas    *fakeVentaRepo
}

func (f *fakeTxRunner) RunInTx(ctx context.Context, fn func(repository.ProductoRepository, repository.VentaRepository) error) error {
	copia := make(map[int64]int, len(f.productos.productos))
	for id, p := range f.productos.productos {
		copia[id] = p.StockActual
	}
	if err := fn(f.productos, f.ventas); err != nil {
		for id, stock := range copia {
			if p, ok := f.productos.productos[id]; ok {
				p.StockActual = stock
			}
		}
		return err
	}
	return nil
}
