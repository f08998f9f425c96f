package inteligencia

import (
	"context"
	"sync"
	"time"

	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

// fakeProductoRepo catálogo en memoria para las pruebas del motor.
type fakeProductoRepo struct {
	productos map[int64]*entity.Producto
	errByID   map[int64]error // inyección de fallas por producto
}

func newFakeProductoRepo(productos ...*entity.Producto) *fakeProductoRepo {
	m := make(map[int64]*entity.Producto, len(productos))
	for _, p := range productos {
		m[p.ID] = p
	}
	return &fakeProductoRepo{productos: m, errByID: map[int64]error{}}
}

func (f *fakeProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	if err := f.errByID[id]; err != nil {
		return nil, err
	}
	return f.productos[id], nil
}

func (f *fakeProductoRepo) GetByCodigoBarras(context.Context, string) (*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductoRepo) List(context.Context, repository.ProductoFilter) ([]*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductoRepo) Create(context.Context, *entity.Producto) error { return nil }
func (f *fakeProductoRepo) Update(context.Context, *entity.Producto) error { return nil }
func (f *fakeProductoRepo) Delete(context.Context, int64) error { return nil }
func (f *fakeProductoRepo) DescontarStock(context.Context, int64, int) error { return nil }

// fakeIntelRepo respuestas enlatadas para los puertos de lectura del motor.
// Registra los argumentos recibidos para que las pruebas verifiquen ventanas
// y límites efectivos; el candado cubre las llamadas concurrentes del cálculo
// de alertas.
type fakeIntelRepo struct {
	resumen    map[int64]repository.ResumenVentas
	bajoMinimo []repository.ProductoBajoMinimo
	historial  []repository.ProductoHistorial
	valor      repository.ValorInventarioRow
	rentables  []repository.ProductoVentas
	err        error

	mu           sync.Mutex
	ultimoDesde  time.Time
	ultimoLimite int
}

func (f *fakeIntelRepo) verUltimoDesde() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ultimoDesde
}

func (f *fakeIntelRepo) verUltimoLimite() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ultimoLimite
}

func (f *fakeIntelRepo) ResumenVentas(_ context.Context, productoID int64, desde time.Time) (repository.ResumenVentas, error) {
	if f.err != nil {
		return repository.ResumenVentas{}, f.err
	}
	f.mu.Lock()
	f.ultimoDesde = desde
	f.mu.Unlock()
	return f.resumen[productoID], nil
}

func (f *fakeIntelRepo) ListBajoMinimo(_ context.Context, desde time.Time) ([]repository.ProductoBajoMinimo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	f.ultimoDesde = desde
	f.mu.Unlock()
	return f.bajoMinimo, nil
}

func (f *fakeIntelRepo) ListConHistorial(context.Context) ([]repository.ProductoHistorial, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.historial, nil
}

func (f *fakeIntelRepo) ValorInventario(context.Context) (repository.ValorInventarioRow, error) {
	if f.err != nil {
		return repository.ValorInventarioRow{}, f.err
	}
	return f.valor, nil
}

func (f *fakeIntelRepo) ListRentables(_ context.Context, desde time.Time, limit int) ([]repository.ProductoVentas, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	f.ultimoDesde = desde
	f.ultimoLimite = limit
	f.mu.Unlock()
	return f.rentables, nil
}

// motorDePrueba arma el use case con reloj fijo.
func motorDePrueba(productos *fakeProductoRepo, intel *fakeIntelRepo, ahora time.Time) *InteligenciaUseCase {
	uc := NewInteligenciaUseCase(productos, intel)
	uc.now = func() time.Time { return ahora }
	return uc
}
