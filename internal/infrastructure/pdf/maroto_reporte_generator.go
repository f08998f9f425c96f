// Package pdf implementa el reporte imprimible de inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALUACIÓN: productos / unidades / valor total / promedio   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA DE ALERTAS: Producto | Stock | Mínimo | Nivel | Pedir│
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
	"github.com/tlapasoft/tlapaleria-api/internal/application/inteligencia"
)

var _ inteligencia.GeneradorReporte = (*MarotoReporteGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlerta  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoReporteGenerator implementa inteligencia.GeneradorReporte usando Maroto v2.
type MarotoReporteGenerator struct {
	nombreNegocio string
}

// NewMarotoReporteGenerator construye el generador con el nombre que encabeza
// el reporte.
func NewMarotoReporteGenerator(nombreNegocio string) *MarotoReporteGenerator {
	return &MarotoReporteGenerator{nombreNegocio: nombreNegocio}
}

// GenerarReporteInventario genera el PDF y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReporteInventario(
	_ context.Context,
	valor *dto.ValorInventarioDTO,
	alertas []dto.AlertaStockDTO,
	generado time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.nombreNegocio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.nombreNegocio, generado))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(valuacionRows(valor)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(seccionRow(fmt.Sprintf("ALERTAS DE STOCK (%d)", len(alertas))))
	if len(alertas) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin productos en o bajo su stock mínimo.", props.Text{
				Size: 9, Color: colorGray, Top: 2,
			}),
		)))
	} else {
		m.AddRows(alertasHeaderRow())
		for _, r := range alertaRows(alertas) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado automáticamente a partir del catálogo y las ventas registradas. "+
				"Las cantidades sugeridas de reorden se basan en la demanda de los últimos 30 días.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y fecha de generación (der).
func headerRow(negocio string, generado time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(negocio, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generado.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func seccionRow(titulo string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// valuacionRows: bloque de agregados del catálogo en dos columnas.
func valuacionRows(valor *dto.ValorInventarioDTO) []core.Row {
	dato := func(label, value string) core.Col {
		return col.New(6).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return []core.Row{
		seccionRow("VALUACIÓN DEL INVENTARIO"),
		row.New(11).Add(
			dato("Productos en catálogo", fmt.Sprintf("%d", valor.TotalProductos)),
			dato("Unidades en existencia", fmt.Sprintf("%d", valor.UnidadesTotales)),
		),
		row.New(11).Add(
			dato("Valor total a precio de venta", "$"+formatMoney(valor.ValorTotal.StringFixed(2))),
			dato("Precio promedio", "$"+formatMoney(valor.PrecioPromedio.StringFixed(2))),
		),
		row.New(9).Add(
			dato("Productos bajo stock mínimo", fmt.Sprintf("%d", valor.ProductosBajoStock)),
		),
	}
}

// alertasHeaderRow: cabecera de la tabla de alertas.
func alertasHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Stock", 1, align.Center),
		h("Mínimo", 1, align.Center),
		h("Nivel", 2, align.Center),
		h("Pedir", 1, align.Center),
		h("Proveedor", 2, align.Left),
	)
}

// alertaRows: una fila por alerta; el nivel crítico va en rojo.
func alertaRows(alertas []dto.AlertaStockDTO) []core.Row {
	result := make([]core.Row, 0, len(alertas))
	for _, a := range alertas {
		nivelColor := colorGray
		if a.NivelAlerta == dto.NivelCritico {
			nivelColor = colorAlerta
		}
		pedir := "—"
		if a.ReordenInfo != nil && a.ReordenInfo.CantidadSugerida > 0 {
			pedir = fmt.Sprintf("%d", a.ReordenInfo.CantidadSugerida)
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(a.Nombre, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", a.StockActual), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", a.StockMinimo), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(a.NivelAlerta, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: nivelColor,
			})),
			col.New(1).Add(text.New(pedir, props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(a.Proveedor, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta comas de miles en un string numérico con dos decimales.
// Ej: "25000.00" → "25,000.00"
func formatMoney(s string) string {
	entero := s
	resto := ""
	if i := len(s) - 3; i > 0 && s[i] == '.' {
		entero, resto = s[:i], s[i:]
	}
	n := len(entero)
	if n <= 3 {
		return entero + resto
	}
	buf := make([]byte, 0, n+n/3+len(resto))
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, entero[i])
	}
	return string(buf) + resto
}
