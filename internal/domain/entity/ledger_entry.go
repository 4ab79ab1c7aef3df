package entity

import "time"

// Tipos de asiento aceptados en el libro.
const (
	EntryTypeSale     = "sale"
	EntryTypePurchase = "purchase"
	EntryTypeExpense  = "expense"
	EntryTypeReceipt  = "receipt"
	EntryTypeReturn   = "return" // nota crédito / devolución
)

// LedgerEntry representa un asiento crudo del libro tal como lo entrega el almacén.
// Los punteros nil indican campos ausentes; Amount negativo es una devolución.
type LedgerEntry struct {
	ID          string
	Date        string // YYYY-MM-DD
	Description string
	Amount      *float64 // bruto, IVA incluido
	Type        string
	GSTRate     *float64 // porcentaje (0, 5, 12, 18, 28)
	GSTAmount   *float64
	CreatedAt   time.Time
}

// Float devuelve un puntero al valor; útil para construir asientos en código y tests.
func Float(v float64) *float64 { return &v }
