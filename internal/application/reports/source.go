package reports

import (
	"context"
	"errors"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
	"github.com/jhoicas/gst-ledger/internal/domain/repository"
	"github.com/jhoicas/gst-ledger/pkg/logger"
)

var _ EntrySource = (*RepositorySource)(nil)

// RepositorySource adapta un LedgerEntryRepository al contrato EntrySource.
// Los errores del almacén se registran y se tratan como "sin asientos"; la
// cancelación del contexto sí se propaga para abortar el reporte completo.
type RepositorySource struct {
	repo repository.LedgerEntryRepository
	log  *logger.Logger
}

// NewRepositorySource construye el adaptador.
func NewRepositorySource(repo repository.LedgerEntryRepository, log *logger.Logger) *RepositorySource {
	return &RepositorySource{repo: repo, log: log}
}

// EntriesForPeriod obtiene los asientos del período.
func (s *RepositorySource) EntriesForPeriod(ctx context.Context, period string) ([]entity.LedgerEntry, error) {
	entries, err := s.repo.ListByPeriod(ctx, period)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		s.log.Warn().Err(err).Str("period", period).Msg("reports: almacén de asientos no disponible, se continúa sin datos")
		return []entity.LedgerEntry{}, nil
	}
	// El almacén puede devolver asientos fuera del período; se recortan aquí.
	out := make([]entity.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if gst.InPeriod(e.Date, period) {
			out = append(out, e)
		}
	}
	return out, nil
}
