// Package pdf genera la hoja de remesa del rider (cuadre de fin de día).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Rider  │  Remittance slip + Fecha                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Cash | GCash | Returned (conteo y total)          │
//	│  GRAND TOTAL / entregas cerradas                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cliente | Dirección | Estado | Método | Monto        │
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
	"github.com/shopspring/decimal"

	appdelivery "github.com/jhoicas/rider-tracker/internal/application/delivery"
	"github.com/jhoicas/rider-tracker/internal/domain/delivery"
	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

var _ appdelivery.RemittancePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorReturn  = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa delivery.RemittancePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateRemittancePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateRemittancePDF(_ context.Context, slip appdelivery.RemittanceSlip) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Remittance slip", true).
		WithAuthor(slip.RiderName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(slip))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(slip.Summary))
	m.AddRows(totalsRow(slip.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(slip.Records) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin entregas cerradas hoy.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range tableDetailRows(slip.Records) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del rider (izq) y título + fecha (der).
func headerRow(slip appdelivery.RemittanceSlip) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(slip.RiderName, "-"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Rider", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("REMITTANCE SLIP", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+slip.Day.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: un bloque por grupo de la remesa.
func summaryRow(r delivery.Remittance) core.Row {
	block := func(label string, b delivery.Bucket, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: c, Top: 1, Align: align.Center}),
			text.New(formatMoney(b.Total), props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Align: align.Center}),
			text.New(fmt.Sprintf("%d entregas", b.Count), props.Text{Size: 7, Top: 13, Color: colorGray, Align: align.Center}),
		)
	}
	return row.New(20).Add(
		block("CASH", r.Cash, colorPrimary),
		block("GCASH", r.GCash, colorPrimary),
		block("RETURNED", r.Returned, colorReturn),
	)
}

// totalsRow: gran total alineado a la derecha.
func totalsRow(r delivery.Remittance) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Entregas cerradas: %d", r.TotalDelivered), props.Text{
			Size: 9, Top: 2, Color: colorGray,
		})),
		col.New(3).Add(text.New("GRAND TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(formatMoney(r.GrandTotal), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// tableHeaderRow: cabecera de la tabla de entregas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cliente", 3, align.Left),
		h("Dirección", 3, align.Left),
		h("Estado", 2, align.Center),
		h("Método", 2, align.Center),
		h("Monto", 2, align.Right),
	)
}

// tableDetailRows: una fila por entrega cerrada.
func tableDetailRows(records []*entity.Delivery) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, d := range records {
		name := "-"
		if d.Customer != nil {
			name = d.Customer.Name
		}
		method := "-"
		if d.PaymentMethod != nil {
			method = strings.ToUpper(string(*d.PaymentMethod))
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(d.Address(), "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(string(d.Status), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(method, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(d.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney monto con separador de miles y dos decimales.
// Ej: 25000 → "PHP 25,000.00", 1234567.5 → "PHP 1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return "PHP " + sign + string(buf) + "." + frac
}
