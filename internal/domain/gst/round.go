package gst

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 redondea a 2 decimales (mitad lejos de cero).
// Pasa por la representación decimal más corta del float, así 1.005 se trata
// como 1.005 y no como 1.00499999999999989. NaN e ±Inf devuelven 0.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// RoundMoney redondea un monto a 2 decimales. Todo valor monetario emitido pasa por aquí.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// money convierte un float finito a decimal redondeado; no finito => cero.
func money(x float64) decimal.Decimal {
	if !isFinite(x) {
		return decimal.Zero
	}
	return RoundMoney(decimal.NewFromFloat(x))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// finite indica si el campo opcional está presente y es finito.
func finite(p *float64) bool {
	return p != nil && isFinite(*p)
}
