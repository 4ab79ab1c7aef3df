package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
)

func TestBuildSalesRegister_FiltraYConservaOrden(t *testing.T) {
	n := gst.NewNormalizer(gst.DefaultConfig())
	entries := []entity.LedgerEntry{
		{ID: "a", Date: "2025-10-01", Type: "sale", Amount: entity.Float(1180), GSTRate: entity.Float(18), Description: "mostrador"},
		{ID: "b", Date: "2025-10-02", Type: "purchase", Amount: entity.Float(112), GSTRate: entity.Float(12)},
		{ID: "c", Date: "2025-10-31", Type: "sale", Amount: entity.Float(-590), GSTRate: entity.Float(18)},
		{ID: "d", Date: "2025-10-32", Type: "sale", Amount: entity.Float(100)},  // fecha inválida
		{ID: "e", Date: "2025-10-05", Type: "sale", Amount: entity.Float(-100)}, // devolución sin tarifa
		{ID: "f", Date: "2025-10-06", Type: "sale", Amount: entity.Float(210)},
	}

	reg := n.BuildSalesRegister("2025-10", entries)

	require.Len(t, reg.Rows, 3)
	assert.Equal(t, "2025-10", reg.Period)
	assert.Equal(t, []string{"a", "c", "f"}, []string{reg.Rows[0].EntryID, reg.Rows[1].EntryID, reg.Rows[2].EntryID})

	assert.Equal(t, "mostrador", reg.Rows[0].Description)
	assertMoney(t, "1000.00", reg.Rows[0].TaxableAmount)
	assert.False(t, reg.Rows[0].IsReturn)

	assert.True(t, reg.Rows[1].IsReturn)
	assertMoney(t, "500.00", reg.Rows[1].TaxableAmount)
	assertMoney(t, "90.00", reg.Rows[1].GSTAmount)

	assert.True(t, reg.Rows[2].Estimated)
	assertMoney(t, "200.00", reg.Rows[2].TaxableAmount)
	assertMoney(t, "10.00", reg.Rows[2].GSTAmount)
	assert.True(t, reg.Heuristic)
}

func TestBuildSummaryReturn_Totales(t *testing.T) {
	n := gst.NewNormalizer(gst.DefaultConfig())
	entries := []entity.LedgerEntry{
		withRate(entry("sale", 1180, "2025-10-01"), 18),
		withRate(entry("sale", 105, "2025-10-02"), 5),
		withRate(entry("sale", 118, "2025-10-03"), 18),
		withRate(entry("purchase", 224, "2025-10-04"), 12),
		withRate(entry("return", -118, "2025-10-05"), 18),
		withRate(entry("expense", 500, "2025-10-06"), 18), // no entra al resumen
		entry("receipt", 300, "2025-10-07"),
	}

	sr := n.BuildSummaryReturn("2025-10", entries)

	assertMoney(t, "1200.00", sr.OutwardTaxable)
	assertMoney(t, "203.00", sr.OutwardTax)
	assertMoney(t, "200.00", sr.InwardTaxable)
	assertMoney(t, "24.00", sr.InwardTax)
	assertMoney(t, "18.00", sr.CreditNoteTax)
	assertMoney(t, "179.00", sr.NetLiability)
	assert.False(t, sr.Heuristic)

	require.Len(t, sr.RateBreakdown, 2)
	assert.Equal(t, "5", sr.RateBreakdown[0].Rate.String())
	assertMoney(t, "100.00", sr.RateBreakdown[0].TaxableAmount)
	assert.Equal(t, "18", sr.RateBreakdown[1].Rate.String())
	assertMoney(t, "198.00", sr.RateBreakdown[1].GSTAmount)
}

// Un saldo a favor (IVA descontable mayor al generado) se reporta como cero.
func TestBuildSummaryReturn_PasivoNuncaNegativo(t *testing.T) {
	n := gst.NewNormalizer(gst.DefaultConfig())
	sr := n.BuildSummaryReturn("2025-10", []entity.LedgerEntry{
		withRate(entry("sale", 118, day), 18),
		withRate(entry("purchase", 11800, day), 18),
	})
	assertMoney(t, "18.00", sr.OutwardTax)
	assertMoney(t, "1800.00", sr.InwardTax)
	assertMoney(t, "0.00", sr.NetLiability)
	assert.False(t, sr.NetLiability.IsNegative())
}

func TestBuildSummaryReturn_SinMovimientos(t *testing.T) {
	n := gst.NewNormalizer(gst.DefaultConfig())
	sr := n.BuildSummaryReturn("2025-10", nil)
	assertMoney(t, "0.00", sr.OutwardTax)
	assertMoney(t, "0.00", sr.NetLiability)
	assert.Empty(t, sr.RateBreakdown)
}

func TestBuildProfitAndLoss(t *testing.T) {
	n := gst.NewNormalizer(gst.DefaultConfig())
	pl := n.BuildProfitAndLoss("2025-10", []entity.LedgerEntry{
		withRate(entry("sale", 1180, day), 18),
		entry("receipt", 500, day),
		withRate(entry("purchase", 224, day), 12),
		entry("expense", 118, day),
		withRate(entry("return", -118, day), 18),
		entry("refund", 1, day), // inválido
	})

	assert.Equal(t, 5, pl.TotalEntries)
	assertMoney(t, "1180.00", pl.Sales)
	assertMoney(t, "500.00", pl.Receipts)
	assertMoney(t, "118.00", pl.Returns)
	assertMoney(t, "224.00", pl.Purchases)
	assertMoney(t, "118.00", pl.Expenses)
	assertMoney(t, "1562.00", pl.TotalIncome)
	assertMoney(t, "342.00", pl.TotalExpenses)
	assertMoney(t, "1220.00", pl.NetProfit)
	assertMoney(t, "162.00", pl.GSTCollected)
	assertMoney(t, "42.00", pl.GSTPaid)
	assertMoney(t, "120.00", pl.NetGST)
	assert.True(t, pl.Heuristic)
}
