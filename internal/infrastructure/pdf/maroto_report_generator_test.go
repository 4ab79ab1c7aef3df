package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-ledger/internal/domain/gst"
	"github.com/jhoicas/gst-ledger/internal/infrastructure/pdf"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ─── SalesRegisterDocument ───────────────────────────────────────────────────

func TestSalesRegisterDocument_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("Comercial Demo")
	reg := gst.SalesRegister{
		Period: "2024-03",
		Rows: []gst.SalesRegisterRow{
			{Date: "2024-03-01", Description: "Venta mostrador", Type: "sale",
				NormalizedTax: gst.NormalizedTax{TaxableAmount: d("1000"), GSTRate: d("18"), GSTAmount: d("180"), TotalAmount: d("1180")}},
			{Date: "2024-03-05", Description: "Devolución", Type: "sale", IsReturn: true,
				NormalizedTax: gst.NormalizedTax{TaxableAmount: d("100"), GSTRate: d("18"), GSTAmount: d("18"), TotalAmount: d("118")}},
		},
		Heuristic: true,
	}

	out, err := g.SalesRegisterDocument(context.Background(), reg)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestSalesRegisterDocument_SinFilas(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("")
	out, err := g.SalesRegisterDocument(context.Background(), gst.SalesRegister{Period: "2024-03"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestSalesRegisterDocument_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewMarotoReportGenerator("x").SalesRegisterDocument(ctx, gst.SalesRegister{})
	assert.ErrorIs(t, err, context.Canceled)
}

// ─── SummaryReturnDocument ───────────────────────────────────────────────────

func TestSummaryReturnDocument_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("Comercial Demo")
	sr := gst.SummaryReturn{
		Period:         "2024-03",
		OutwardTaxable: d("1200"),
		OutwardTax:     d("203"),
		InwardTaxable:  d("200"),
		InwardTax:      d("24"),
		CreditNoteTax:  d("18"),
		NetLiability:   d("179"),
		RateBreakdown: []gst.RateBucket{
			{Rate: d("5"), TaxableAmount: d("200"), GSTAmount: d("10")},
			{Rate: d("18"), TaxableAmount: d("1000"), GSTAmount: d("180")},
		},
	}

	out, err := g.SummaryReturnDocument(context.Background(), sr)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
