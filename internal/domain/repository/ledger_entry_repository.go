package repository

import (
	"context"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
)

// LedgerEntryRepository puerto de persistencia de asientos del libro.
type LedgerEntryRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) error
	// ListByPeriod devuelve los asientos cuya fecha cae en el período (YYYY-MM),
	// en orden de registro.
	ListByPeriod(ctx context.Context, period string) ([]entity.LedgerEntry, error)
}
