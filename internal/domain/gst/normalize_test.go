package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
)

const day = "2025-10-21"

func TestNormalizeTax(t *testing.T) {
	n := gst.NewNormalizer(gst.DefaultConfig())

	cases := []struct {
		name                    string
		in                      entity.LedgerEntry
		rate, taxable, tax, tot string
	}{
		{"tarifa explícita", withRate(entry("sale", 1180, day), 18), "18", "1000.00", "180.00", "1180.00"},
		{"venta pequeña sin datos usa tramo reducido", entry("sale", 500, day), "5", "476.19", "23.81", "500.00"},
		{"venta grande sin datos usa tramo estándar", entry("sale", 2000, day), "18", "1694.92", "305.08", "2000.00"},
		{"compra usa tramo de compras", entry("purchase", 112, day), "12", "100.00", "12.00", "112.00"},
		{"gasto usa tramo por defecto", entry("expense", 118, day), "18", "100.00", "18.00", "118.00"},
		{"tarifa fuera de tramos se ignora", withRate(entry("sale", 105, day), 7), "5", "100.00", "5.00", "105.00"},
		{"tarifa cero explícita", withRate(entry("sale", 250, day), 0), "0", "250.00", "0.00", "250.00"},
		{"impuesto explícito se respeta", withTax(entry("sale", 1050, day), 50), "18", "1000.00", "50.00", "1050.00"},
		{"impuesto igual al bruto se recalcula", withTax(withRate(entry("sale", 105, day), 5), 105), "5", "100.00", "5.00", "105.00"},
		{"impuesto negativo se ignora", withTax(withRate(entry("sale", 118, day), 18), -3), "18", "100.00", "18.00", "118.00"},
		{"bruto negativo se lleva a cero", withRate(entry("sale", -118, day), 18), "18", "0.00", "0.00", "0.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.NormalizeTax(tc.in)
			assert.True(t, got.GSTRate.Equal(decimal.RequireFromString(tc.rate)), "rate %s", got.GSTRate)
			assertMoney(t, tc.taxable, got.TaxableAmount, "taxable")
			assertMoney(t, tc.tax, got.GSTAmount, "tax")
			assertMoney(t, tc.tot, got.TotalAmount, "total")
		})
	}
}

// La suma base + impuesto debe cuadrar con el total y ningún componente es negativo.
func TestNormalizeTax_InvarianteAditivo(t *testing.T) {
	n := gst.NewNormalizer(gst.DefaultConfig())
	amounts := []float64{0, 0.01, 0.995, 1, 1.005, 9.99, 99.99, 333.33, 999.995, 1000, 1234.567, 98765.43}
	types := []string{"sale", "purchase", "expense", "receipt"}
	for _, a := range amounts {
		for _, typ := range types {
			for _, rate := range gst.Slabs {
				got := n.NormalizeTax(withRate(entry(typ, a, day), rate))
				require.True(t, got.TaxableAmount.Add(got.GSTAmount).Equal(got.TotalAmount), "%s %v @%v", typ, a, rate)
				assert.False(t, got.TaxableAmount.IsNegative(), "%s %v @%v", typ, a, rate)
				assert.False(t, got.GSTAmount.IsNegative(), "%s %v @%v", typ, a, rate)
				assert.True(t, got.TotalAmount.Equal(got.TotalAmount.Round(2)))
			}
		}
	}
}

func TestNormalizer_ConfigInyectada(t *testing.T) {
	cfg := gst.Config{DefaultRate: 0, StandardRate: 28, ReducedRate: 12, PurchaseRate: 5, LargeSaleThreshold: 100}
	require.NoError(t, cfg.Validate())
	n := gst.NewNormalizer(cfg)

	assert.Equal(t, 28.0, n.ResolveRate(entry("sale", 100, day)))
	assert.Equal(t, 12.0, n.ResolveRate(entry("sale", 99.99, day)))
	assert.Equal(t, 5.0, n.ResolveRate(entry("purchase", 1, day)))
	assert.Equal(t, 0.0, n.ResolveRate(entry("receipt", 1, day)))
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, gst.DefaultConfig().Validate())

	bad := gst.DefaultConfig()
	bad.ReducedRate = 7
	assert.Error(t, bad.Validate())

	bad = gst.DefaultConfig()
	bad.LargeSaleThreshold = -1
	assert.Error(t, bad.Validate())
}
