package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
	"github.com/jhoicas/gst-ledger/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repo de asientos atado a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.LedgerEntryRepository) error) error
}

// ImportResult resumen de una importación masiva.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"` // asientos que no pasan IsValidEntry
}

// ImportUseCase carga asientos en bloque (todo o nada).
type ImportUseCase struct {
	tx TxRunner
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(tx TxRunner) *ImportUseCase {
	return &ImportUseCase{tx: tx}
}

// Import guarda los asientos válidos en una sola transacción; los inválidos se
// cuentan y se omiten, igual que hacen los reportes.
func (uc *ImportUseCase) Import(ctx context.Context, entries []entity.LedgerEntry) (ImportResult, error) {
	var res ImportResult
	now := time.Now().UTC()
	err := uc.tx.Run(ctx, func(repo repository.LedgerEntryRepository) error {
		res = ImportResult{}
		for i := range entries {
			e := entries[i]
			if !gst.IsValidEntry(e) {
				res.Skipped++
				continue
			}
			if e.ID == "" {
				e.ID = uuid.New().String()
			}
			if e.CreatedAt.IsZero() {
				// Conserva el orden del archivo al listar por created_at.
				e.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
			}
			if err := repo.Create(ctx, &e); err != nil {
				return fmt.Errorf("asiento %d: %w", i+1, err)
			}
			res.Imported++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	return res, nil
}
