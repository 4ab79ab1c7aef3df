package postgres

import (
	"errors"
	"math"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// nullDecimal convierte un float opcional a NUMERIC nullable; NaN/Inf se guardan como NULL.
func nullDecimal(p *float64) decimal.NullDecimal {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(*p), Valid: true}
}

// floatPtr inverso de nullDecimal.
func floatPtr(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}
