package gst

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
)

// IsReturn indica si el asiento es una devolución (monto negativo o tipo return).
func IsReturn(e entity.LedgerEntry) bool {
	return e.Type == entity.EntryTypeReturn || (e.Amount != nil && *e.Amount < 0)
}

// HandleReturn descompone una nota crédito igual que la venta original: el valor
// absoluto se trata como bruto con IVA incluido. Devuelve false si el asiento no
// es devolución o no se puede descomponer (sin tarifa utilizable, monto cero).
func HandleReturn(e entity.LedgerEntry) (NormalizedTax, bool) {
	if !IsReturn(e) {
		return NormalizedTax{}, false
	}
	if !finite(e.GSTRate) || !finite(e.Amount) {
		return NormalizedTax{}, false
	}
	rate := math.Min(math.Max(*e.GSTRate, 0), MaxRate)
	if rate <= 0 {
		return NormalizedTax{}, false
	}
	abs := money(math.Abs(*e.Amount))
	if abs.IsZero() {
		return NormalizedTax{}, false
	}
	rateDec := decimal.NewFromFloat(rate)
	divisor := decimal.NewFromInt(1).Add(rateDec.Div(hundred))
	if !divisor.IsPositive() {
		return NormalizedTax{}, false
	}
	taxable, tax := splitInclusive(abs, rateDec)
	if taxable.IsNegative() || tax.IsNegative() {
		return NormalizedTax{}, false
	}
	return NormalizedTax{
		TaxableAmount: taxable,
		GSTRate:       rateDec,
		GSTAmount:     tax,
		TotalAmount:   taxable.Add(tax),
	}, true
}
