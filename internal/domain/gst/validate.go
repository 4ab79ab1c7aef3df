package gst

import "github.com/jhoicas/gst-ledger/internal/domain/entity"

var entryTypes = map[string]struct{}{
	entity.EntryTypeSale:     {},
	entity.EntryTypePurchase: {},
	entity.EntryTypeExpense:  {},
	entity.EntryTypeReceipt:  {},
	entity.EntryTypeReturn:   {},
}

// IsValidType indica si t pertenece al conjunto cerrado de tipos de asiento.
func IsValidType(t string) bool {
	_, ok := entryTypes[t]
	return ok
}

// IsValidEntry valida estructura y tipos de un asiento crudo:
// monto presente y finito, tipo conocido y fecha de calendario válida.
// Los asientos inválidos se excluyen de los reportes sin levantar error.
func IsValidEntry(e entity.LedgerEntry) bool {
	if !finite(e.Amount) {
		return false
	}
	if !IsValidType(e.Type) {
		return false
	}
	return e.Date != "" && IsValidDate(e.Date)
}
