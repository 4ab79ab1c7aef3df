package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
)

// assertMoney compara un decimal con el valor esperado a 2 decimales.
func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), msgAndArgs...)
}

func entry(typ string, amount float64, date string) entity.LedgerEntry {
	return entity.LedgerEntry{Date: date, Type: typ, Amount: entity.Float(amount)}
}

func withRate(e entity.LedgerEntry, rate float64) entity.LedgerEntry {
	e.GSTRate = entity.Float(rate)
	return e
}

func withTax(e entity.LedgerEntry, tax float64) entity.LedgerEntry {
	e.GSTAmount = entity.Float(tax)
	return e
}
