package inteligencia

import (
	"context"
	"fmt"
	"time"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
)

// GeneradorReporte puerto de render del reporte de inventario (la
// implementación de infraestructura lo produce en PDF).
type GeneradorReporte interface {
	GenerarReporteInventario(
		ctx context.Context,
		valor *dto.ValorInventarioDTO,
		alertas []dto.AlertaStockDTO,
		generado time.Time,
	) ([]byte, error)
}

// ReporteUseCase arma el reporte imprimible de inventario: valuación global
// más el detalle de alertas vigentes.
type ReporteUseCase struct {
	motor     *InteligenciaUseCase
	generador GeneradorReporte
}

// NewReporteUseCase construye el caso de uso del reporte.
func NewReporteUseCase(motor *InteligenciaUseCase, generador GeneradorReporte) *ReporteUseCase {
	return &ReporteUseCase{motor: motor, generador: generador}
}

// GenerarPDF consulta valuación y alertas y devuelve el documento en bytes.
func (uc *ReporteUseCase) GenerarPDF(ctx context.Context) ([]byte, error) {
	valor, err := uc.motor.CalcularValorInventario(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: %w", err)
	}
	alertas, err := uc.motor.GenerarAlertas(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: %w", err)
	}
	return uc.generador.GenerarReporteInventario(ctx, valor, alertas, uc.motor.now())
}
