// Package inteligencia implementa el motor de inventario inteligente:
// predicción de demanda, punto de reorden, alertas de stock, análisis de
// lento movimiento, valuación y ranking de rentabilidad.
//
// Todas las operaciones son de solo lectura sobre los puertos de consulta y
// deterministas para un mismo estado de datos: el motor no guarda estado entre
// llamadas y ordena sus propios resultados en lugar de confiar en el orden de
// la base de datos.
package inteligencia

import (
	"time"

	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

const (
	// Ventana de análisis de demanda: acotada a [1, 365] días, default 30.
	ventanaMinDias     = 1
	ventanaMaxDias     = 365
	ventanaDefaultDias = 30

	// Reorden: demanda de 30 días, 7 días de stock de seguridad y 20% de
	// buffer sobre la predicción mensual.
	diasVentanaDemanda  = 30
	diasStockSeguridad  = 7
	factorBufferReorden = 1.2

	diasLentoMovimientoDefault = 60

	// Límite del ranking de rentabilidad: se acota, no se rechaza.
	limiteRentablesDefault = 10
	limiteRentablesMax     = 200
)

// InteligenciaUseCase agrupa las seis operaciones del motor. Consume puertos
// de lectura inyectados; no toca la base de datos directamente.
type InteligenciaUseCase struct {
	productoRepo repository.ProductoRepository
	intelRepo    repository.InteligenciaRepository
	now          func() time.Time
}

// NewInteligenciaUseCase construye el motor con reloj de sistema.
func NewInteligenciaUseCase(
	productoRepo repository.ProductoRepository,
	intelRepo repository.InteligenciaRepository,
) *InteligenciaUseCase {
	return &InteligenciaUseCase{
		productoRepo: productoRepo,
		intelRepo:    intelRepo,
		now:          time.Now,
	}
}

// clampDias acota la ventana de análisis: cero significa "no enviado" y toma
// el default; cualquier otro valor se recorta en silencio a [1, 365].
func clampDias(dias int) int {
	switch {
	case dias == 0:
		return ventanaDefaultDias
	case dias < ventanaMinDias:
		return ventanaMinDias
	case dias > ventanaMaxDias:
		return ventanaMaxDias
	}
	return dias
}
