// Package pdf implementa la generación de los reportes de inventario y de
// movimientos usando Maroto v2.
//
// Layout de la página A4 (reporte de inventario):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Stock | Costo | Precio | Valorizado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades en stock / inventario valorizado          │
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
	"github.com/shopspring/decimal"

	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimario = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReporteGenerator implementa reportes.GeneradorPDF usando Maroto v2.
type MarotoReporteGenerator struct {
	titulo string // razón social que encabeza los reportes
}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator(titulo string) *MarotoReporteGenerator {
	if titulo == "" {
		titulo = "Almacén"
	}
	return &MarotoReporteGenerator{titulo: titulo}
}

func (g *MarotoReporteGenerator) nuevoDocumento(subtitulo string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(subtitulo, true).
		WithAuthor(g.titulo, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(encabezadoRow(g.titulo, subtitulo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	return m
}

// ReporteInventario genera el inventario valorizado: una fila por artículo
// activo más el bloque de totales.
func (g *MarotoReporteGenerator) ReporteInventario(_ context.Context, articulos []*entity.Articulo) ([]byte, error) {
	m := g.nuevoDocumento("Reporte de Inventario")

	m.AddRows(inventarioHeaderRow())

	unidades := decimal.Zero
	valorizado := decimal.Zero
	for _, a := range articulos {
		valor := a.Valorizacion()
		unidades = unidades.Add(a.StockActual)
		valorizado = valorizado.Add(valor)
		m.AddRows(inventarioDetalleRow(a, valor))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(inventarioTotalesRow(len(articulos), unidades, valorizado))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar inventario: %w", err)
	}
	return doc.GetBytes(), nil
}

// ReporteMovimientos genera el listado de registros con sus líneas anidadas.
func (g *MarotoReporteGenerator) ReporteMovimientos(_ context.Context, registros []*entity.RegistroConDetalles) ([]byte, error) {
	m := g.nuevoDocumento("Reporte de Movimientos")

	total := decimal.Zero
	for _, r := range registros {
		m.AddRows(movimientoCabeceraRow(r))
		for _, d := range r.Detalles {
			m.AddRows(movimientoDetalleRow(d))
		}
		total = total.Add(r.Total())
		m.AddRows(line.NewRow(1, props.Line{Color: colorGris, Thickness: 0.2}))
	}

	m.AddRows(movimientosTotalRow(len(registros), total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar movimientos: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// encabezadoRow: título del negocio (izq) y nombre del reporte + fecha (der).
func encabezadoRow(titulo, subtitulo string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(subtitulo, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimario, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGris,
			}),
		),
	)
}

// inventarioHeaderRow: cabecera de la tabla de artículos.
func inventarioHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 5, align.Left),
		h("Stock", 2, align.Right),
		h("Costo", 2, align.Right),
		h("Precio", 1, align.Right),
		h("Valorizado", 2, align.Right),
	)
}

func inventarioDetalleRow(a *entity.Articulo, valor decimal.Decimal) core.Row {
	celda := func(s string, size int, al align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: al, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		celda(a.Nombre, 5, align.Left),
		celda(a.StockActual.String(), 2, align.Right),
		celda("$"+a.Costo.StringFixed(2), 2, align.Right),
		celda("$"+a.PrecioVenta.StringFixed(2), 1, align.Right),
		celda("$"+valor.StringFixed(2), 2, align.Right),
	)
}

func inventarioTotalesRow(cantArticulos int, unidades, valorizado decimal.Decimal) core.Row {
	etiqueta := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	valor := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			etiqueta("Artículos activos:"),
			etiqueta("Unidades en stock:"),
			etiqueta("Inventario valorizado:"),
		),
		col.New(4).Add(
			valor(fmt.Sprintf("%d", cantArticulos)),
			valor(unidades.String()),
			valor("$"+valorizado.StringFixed(2)),
		),
	)
}

// movimientoCabeceraRow: tipo + comprobante + contraparte + fecha.
func movimientoCabeceraRow(r *entity.RegistroConDetalles) core.Row {
	contraparte := r.Proveedor
	if r.Tipo == entity.TipoSalida {
		contraparte = r.Destino
	}
	return row.New(8).Add(
		col.New(2).Add(text.New(r.Tipo, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimario, Top: 1,
		})),
		col.New(3).Add(text.New("Comp. "+r.NumComprobante, props.Text{
			Size: 8, Top: 1,
		})),
		col.New(4).Add(text.New(contraparte, props.Text{
			Size: 8, Top: 1,
		})),
		col.New(3).Add(text.New(r.Fecha.Format("02/01/2006"), props.Text{
			Size: 8, Align: align.Right, Top: 1, Color: colorGris,
		})),
	)
}

func movimientoDetalleRow(d entity.Detalle) core.Row {
	return row.New(5).Add(
		col.New(1),
		col.New(5).Add(text.New(d.Articulo, props.Text{Size: 8, Top: 0.5})),
		col.New(2).Add(text.New(d.Cantidad.String(), props.Text{
			Size: 8, Align: align.Right, Top: 0.5,
		})),
		col.New(2).Add(text.New("$"+d.PrecioUnitario.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 0.5,
		})),
		col.New(2).Add(text.New("$"+d.Total.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 0.5, Right: 1,
		})),
	)
}

func movimientosTotalRow(cantRegistros int, total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(fmt.Sprintf("%d movimientos", cantRegistros), props.Text{
			Size: 9, Top: 2, Color: colorGris,
		})),
		col.New(6).Add(text.New("Total movido: $"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Top: 2, Right: 1,
		})),
	)
}
