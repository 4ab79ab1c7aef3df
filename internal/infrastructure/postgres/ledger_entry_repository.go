package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-ledger/internal/domain"
	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// LedgerEntryRepo implementación de LedgerEntryRepository (usable con pool o tx).
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

// Create persiste un asiento. La fecha se guarda como texto tal cual llega.
func (r *LedgerEntryRepo) Create(ctx context.Context, e *entity.LedgerEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ledger_entries (id, date, description, amount, type, gst_rate, gst_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.Description, nullDecimal(e.Amount), e.Type,
		nullDecimal(e.GSTRate), nullDecimal(e.GSTAmount), e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ledger entry %s: %w", e.ID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListByPeriod lista los asientos del período (YYYY-MM) en orden de registro.
func (r *LedgerEntryRepo) ListByPeriod(ctx context.Context, period string) ([]entity.LedgerEntry, error) {
	query := `
		SELECT id, date, description, amount, type, gst_rate, gst_amount, created_at
		FROM ledger_entries
		WHERE date LIKE $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, period+"-%")
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var list []entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		var amount, rate, tax decimal.NullDecimal
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &amount, &e.Type, &rate, &tax, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Amount = floatPtr(amount)
		e.GSTRate = floatPtr(rate)
		e.GSTAmount = floatPtr(tax)
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return list, nil
}
