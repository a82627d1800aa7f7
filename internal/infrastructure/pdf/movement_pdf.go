// Package pdf genera el comprobante imprimible de una entrada o salida.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal  │  Folio + Fecha                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Proveedor/Destino + Recibió/Entregó + Observación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Cajas | Pesos (LB) | Total (LB)               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cajas y libras del documento                      │
//	│  FIRMAS: Entregué conforme / Recibí conforme                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 140, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator genera comprobantes de movimiento usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateMovementPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateMovementPDF(_ context.Context, mov *entity.Movement, branch *entity.Branch) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante "+mov.Folio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(mov, branch))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(mov))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(mov.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(mov))
	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: sucursal (izq), tipo de documento, folio y fecha (der).
func headerRow(mov *entity.Movement, branch *entity.Branch) core.Row {
	title := "ENTRADA DE INVENTARIO"
	if mov.Type == entity.MovementTypeSalida {
		title = "SALIDA DE INVENTARIO"
		if mov.Transfer {
			title = "TRASPASO ENTRE SUCURSALES"
		}
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(branch.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Libro de movimientos de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(mov.Folio, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+mov.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: contraparte, actor y observación del movimiento.
func partiesRow(mov *entity.Movement) core.Row {
	cpLabel, actorLabel := "Proveedor", "Recibió"
	if mov.Type == entity.MovementTypeSalida {
		cpLabel, actorLabel = "Destino", "Entregó"
	}

	fields := fmt.Sprintf("%s: %s   |   %s: %s",
		cpLabel, mov.Counterparty, actorLabel, nonEmpty(mov.Actor, "—"))
	if mov.ReceivedBy != "" {
		fields += "   |   Recibido por: " + mov.ReceivedBy
	}

	return row.New(12).Add(
		col.New(12).Add(
			text.New(fields, props.Text{Size: 9, Top: 1}),
			text.New(nonEmpty(mov.Observation, ""), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(3).Add(text.New("SKU", header)),
		col.New(1).Add(text.New("Cajas", header)),
		col.New(6).Add(text.New("Pesos (LB)", header)),
		col.New(2).Add(text.New("Total (LB)", textRight(header))),
	)
}

func tableLineRows(lines []entity.MovementLine) []core.Row {
	cell := props.Text{Size: 8, Top: 1}
	rows := make([]core.Row, 0, len(lines))
	for i := range lines {
		l := &lines[i]
		weights := make([]string, len(l.Weights))
		for j, w := range l.Weights {
			weights[j] = w.String()
		}
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(l.SKU, cell)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", len(l.Weights)), cell)),
			col.New(6).Add(text.New(strings.Join(weights, ", "), cell)),
			col.New(2).Add(text.New(l.Total().String(), textRight(cell))),
		))
	}
	return rows
}

func totalsRow(mov *entity.Movement) core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d cajas   |   TOTAL: %s LB", mov.Boxes(), mov.Total().String()), bold),
		),
	)
}

// signatureRow: líneas de firma para quien entrega y quien recibe.
func signatureRow() core.Row {
	sig := props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}
	return row.New(14).Add(
		col.New(5).Add(
			text.New("_______________________________", props.Text{Size: 9, Align: align.Center, Top: 6}),
			text.New("Entregué conforme", textTop(sig, 12)),
		),
		col.New(2),
		col.New(5).Add(
			text.New("_______________________________", props.Text{Size: 9, Align: align.Center, Top: 6}),
			text.New("Recibí conforme", textTop(sig, 12)),
		),
	)
}

func textRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}

func textTop(p props.Text, top float64) props.Text {
	p.Top = top
	return p
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
