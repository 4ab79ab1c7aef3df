package gst

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
)

// NormalizedTax base gravable e impuesto derivados de un asiento. Nunca se persiste.
// Invariante: TaxableAmount + GSTAmount == TotalAmount, todos >= 0 y a 2 decimales.
type NormalizedTax struct {
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	GSTAmount     decimal.Decimal `json:"gst_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// Normalizer calcula los campos de impuesto con la configuración inyectada.
type Normalizer struct {
	cfg Config
}

// NewNormalizer construye el normalizador.
func NewNormalizer(cfg Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// ResolveRate tarifa del asiento si es un tramo; si no, la regla de negocio por tipo y monto.
func (n *Normalizer) ResolveRate(e entity.LedgerEntry) float64 {
	if e.GSTRate != nil && IsSlab(*e.GSTRate) {
		return *e.GSTRate
	}
	amount := 0.0
	if finite(e.Amount) {
		amount = *e.Amount
	}
	switch e.Type {
	case entity.EntryTypeSale:
		if amount >= n.cfg.LargeSaleThreshold {
			return n.cfg.StandardRate
		}
		return n.cfg.ReducedRate
	case entity.EntryTypePurchase:
		return n.cfg.PurchaseRate
	default:
		return n.cfg.DefaultRate
	}
}

// NormalizeTax deriva base e impuesto. Si el asiento trae un GSTAmount explícito
// menor que el bruto se respeta tal cual; si no, se calcula hacia atrás desde el
// bruto con la tarifa resuelta. El bruto se lleva a cero si es negativo.
func (n *Normalizer) NormalizeTax(e entity.LedgerEntry) NormalizedTax {
	rate := n.ResolveRate(e)
	gross := decimal.Zero
	if finite(e.Amount) {
		gross = money(math.Max(*e.Amount, 0))
	}

	var taxable, tax decimal.Decimal
	if finite(e.GSTAmount) && *e.GSTAmount >= 0 && decimal.NewFromFloat(*e.GSTAmount).LessThan(gross) {
		tax = money(*e.GSTAmount)
		taxable = gross.Sub(tax)
	} else {
		taxable, tax = splitInclusive(gross, decimal.NewFromFloat(rate))
	}

	return NormalizedTax{
		TaxableAmount: taxable,
		GSTRate:       decimal.NewFromFloat(rate),
		GSTAmount:     tax,
		TotalAmount:   taxable.Add(tax),
	}
}

// splitInclusive separa un bruto (ya a 2 decimales) con IVA incluido en base e impuesto.
func splitInclusive(gross, rate decimal.Decimal) (taxable, tax decimal.Decimal) {
	divisor := decimal.NewFromInt(1).Add(rate.Div(hundred))
	taxable = RoundMoney(gross.Div(divisor))
	tax = RoundMoney(gross.Sub(taxable))
	return taxable, tax
}
