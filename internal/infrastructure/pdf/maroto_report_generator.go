// Package pdf implementa la representación gráfica de los reportes de impuesto
// (libro de ventas y declaración resumen) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título del reporte │ Período + fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Descripción | Base | Tarifa | Impuesto | Total│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES / DESGLOSE POR TARIFA                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: aviso de modo estimado + leyenda                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-ledger/internal/domain/gst"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 170, Green: 90, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.ReportDocumentGenerator en PDF.
type MarotoReportGenerator struct {
	company string
	now     func() time.Time
}

// NewMarotoReportGenerator construye el generador; company aparece en el encabezado.
func NewMarotoReportGenerator(company string) *MarotoReportGenerator {
	return &MarotoReportGenerator{company: company, now: time.Now}
}

// SalesRegisterDocument genera el PDF del libro de ventas.
func (g *MarotoReportGenerator) SalesRegisterDocument(ctx context.Context, reg gst.SalesRegister) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := maroto.New(g.pageConfig("Libro de ventas " + reg.Period))

	m.AddRows(g.headerRow("LIBRO DE VENTAS (GSTR-1)", reg.Period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(salesHeaderRow())
	m.AddRows(salesDetailRows(reg.Rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	taxable, tax, total := decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range reg.Rows {
		sign := decimal.NewFromInt(1)
		if r.IsReturn {
			sign = sign.Neg()
		}
		taxable = taxable.Add(r.TaxableAmount.Mul(sign))
		tax = tax.Add(r.GSTAmount.Mul(sign))
		total = total.Add(r.TotalAmount.Mul(sign))
	}
	m.AddRows(totalsRow([][2]string{
		{"Base gravable:", formatMoney(taxable)},
		{"Impuesto:", formatMoney(tax)},
		{"TOTAL:", formatMoney(total)},
	}))
	m.AddRows(footerRows(reg.Heuristic)...)

	return generate(m)
}

// SummaryReturnDocument genera el PDF de la declaración resumen.
func (g *MarotoReportGenerator) SummaryReturnDocument(ctx context.Context, sr gst.SummaryReturn) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := maroto.New(g.pageConfig("Declaración resumen " + sr.Period))

	m.AddRows(g.headerRow("DECLARACIÓN RESUMEN (GSTR-3B)", sr.Period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(
		summaryLine("Operaciones gravadas de salida", sr.OutwardTaxable, sr.OutwardTax),
		summaryLine("Operaciones de entrada (crédito tributario)", sr.InwardTaxable, sr.InwardTax),
		summaryLine("Notas crédito de venta", decimal.Zero, sr.CreditNoteTax),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([][2]string{
		{"Impuesto generado:", formatMoney(sr.OutwardTax)},
		{"Impuesto descontable:", formatMoney(sr.InwardTax)},
		{"SALDO A PAGAR:", formatMoney(sr.NetLiability)},
	}))

	if len(sr.RateBreakdown) > 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("DESGLOSE POR TARIFA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3,
			}),
		)))
		for _, b := range sr.RateBreakdown {
			m.AddRows(summaryLine("Tarifa "+b.Rate.String()+"%", b.TaxableAmount, b.GSTAmount))
		}
	}
	m.AddRows(footerRows(sr.Heuristic)...)

	return generate(m)
}

func (g *MarotoReportGenerator) pageConfig(title string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.company, true).
		Build()
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + título (izq) y período + fecha de emisión (der).
func (g *MarotoReportGenerator) headerRow(title, period string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(g.company, "-"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+g.now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func salesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Base", 2, align.Right),
		h("Tarifa", 1, align.Center),
		h("Impuesto", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

// salesDetailRows: una fila por venta; las notas crédito se marcan y van en negativo.
func salesDetailRows(rows []gst.SalesRegisterRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		desc := r.Description
		prefix := ""
		if r.IsReturn {
			desc = "[NC] " + desc
			prefix = "-"
		}
		if r.Estimated {
			desc += " *"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.Date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(desc, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(prefix+formatMoney(r.TaxableAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(r.GSTRate.String()+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(prefix+formatMoney(r.GSTAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(prefix+formatMoney(r.TotalAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func summaryLine(label string, taxable, tax decimal.Decimal) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(label, props.Text{Size: 9, Top: 1, Left: 1})),
		col.New(3).Add(text.New(formatMoney(taxable),
			props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		col.New(3).Add(text.New(formatMoney(tax),
			props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalsRow: bloque de totales alineado a la derecha; la última línea va resaltada.
func totalsRow(lines [][2]string) core.Row {
	labels := make([]core.Component, 0, len(lines))
	values := make([]core.Component, 0, len(lines))
	for i, l := range lines {
		p := props.Text{Size: 9, Align: align.Right, Top: float64(i * 6)}
		if i == len(lines)-1 {
			p.Style = fontstyle.Bold
			p.Size = 10
			p.Color = colorPrimary
		}
		lp := p
		lp.Style = fontstyle.Bold
		lp.Right = 2
		labels = append(labels, text.New(l[0], lp))
		p.Right = 1
		values = append(values, text.New(l[1], p))
	}
	return row.New(float64(len(lines)*6+4)).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

func footerRows(heuristic bool) []core.Row {
	rows := []core.Row{line.NewRow(3)}
	if heuristic {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("* Algunos asientos no traían tarifa ni impuesto: los valores marcados son estimados.",
				props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWarn, Top: 2}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Reporte generado a partir del libro de asientos. Valores redondeados a dos decimales.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney imprime con dos decimales y separador de miles.
// Ej: 25000 → "25,000.00", -1234.5 → "-1,234.50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(c)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
