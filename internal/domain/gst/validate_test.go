package gst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
)

func TestIsValidEntry(t *testing.T) {
	cases := []struct {
		name string
		in   entity.LedgerEntry
		want bool
	}{
		{"venta válida", entry("sale", 100, "2025-10-21"), true},
		{"devolución negativa", entry("return", -50, "2025-10-21"), true},
		{"recibo", entry("receipt", 10, "2025-10-01"), true},
		{"sin monto", entity.LedgerEntry{Date: "2025-10-21", Type: "sale"}, false},
		{"monto NaN", entry("sale", math.NaN(), "2025-10-21"), false},
		{"monto infinito", entry("sale", math.Inf(1), "2025-10-21"), false},
		{"tipo desconocido", entry("refund", 100, "2025-10-21"), false},
		{"tipo vacío", entry("", 100, "2025-10-21"), false},
		{"sin fecha", entry("sale", 100, ""), false},
		{"fecha imposible", entry("sale", 100, "2025-02-30"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gst.IsValidEntry(tc.in))
		})
	}
}
