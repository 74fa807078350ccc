// Package pdf genera el reporte de saldos en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Ubicación | Cantidad                      │
//	│         subtotal por producto                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: filas y pares con saldo negativo                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/inventory-ledger/internal/application/inventory"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

var _ inventory.BalancePDFGenerator = (*MarotoBalanceReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorNegative = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoBalanceReport implementa inventory.BalancePDFGenerator usando Maroto v2.
type MarotoBalanceReport struct {
	title string
}

// NewMarotoBalanceReport construye el generador. title aparece en la cabecera y en los metadatos.
func NewMarotoBalanceReport(title string) *MarotoBalanceReport {
	if title == "" {
		title = "Reporte de saldos"
	}
	return &MarotoBalanceReport{title: title}
}

// GenerateBalancePDF genera el PDF y devuelve sus bytes.
func (g *MarotoBalanceReport) GenerateBalancePDF(
	ctx context.Context,
	rows []entity.BalanceRow,
	generatedAt time.Time,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableBodyRows(rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Saldos netos por producto y ubicación", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Ubicación", 5, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

// tableBodyRows: una fila por par y un subtotal al cerrar cada producto.
// Las filas llegan ordenadas por producto.
func tableBodyRows(rows []entity.BalanceRow) []core.Row {
	if len(rows) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		))}
	}

	result := make([]core.Row, 0, len(rows)+len(rows)/2)
	subtotal := 0
	for i, r := range rows {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(label(r.ProductName, r.ProductID), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(label(r.LocationName, r.LocationID), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(qtyText(r.Qty, false)),
		))
		subtotal += r.Qty

		last := i == len(rows)-1 || rows[i+1].ProductID != r.ProductID
		if last {
			result = append(result, row.New(6).Add(
				col.New(10).Add(text.New("Total "+label(r.ProductName, r.ProductID), props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 2,
				})),
				col.New(2).Add(qtyText(subtotal, true)),
			))
			subtotal = 0
		}
	}
	return result
}

func footerRow(rows []entity.BalanceRow) core.Row {
	negatives := 0
	for _, r := range rows {
		if r.Qty < 0 {
			negatives++
		}
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Pares producto/ubicación: %d   |   Con saldo negativo: %d", len(rows), negatives), props.Text{
			Size: 7, Top: 2, Color: colorGray,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func qtyText(qty int, bold bool) core.Component {
	p := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
	if bold {
		p.Style = fontstyle.Bold
	}
	if qty < 0 {
		p.Color = colorNegative
	}
	return text.New(formatQty(qty), p)
}

func label(name, id string) string {
	if name == "" || name == id {
		return id
	}
	return name + " (" + id + ")"
}

// formatQty inserta puntos de miles. Ej: 1500 → "1.500", -25000 → "-25.000".
func formatQty(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
