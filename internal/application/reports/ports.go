package reports

import (
	"context"

	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
)

// EntrySource entrega la foto de asientos de un período.
// Solo debe devolver error ante cancelación del contexto; cualquier otro fallo
// de transporte se degrada a una secuencia vacía (ver RepositorySource).
type EntrySource interface {
	EntriesForPeriod(ctx context.Context, period string) ([]entity.LedgerEntry, error)
}

// ReportDocumentGenerator genera representaciones descargables (PDF, XML) de los reportes.
type ReportDocumentGenerator interface {
	SalesRegisterDocument(ctx context.Context, reg gst.SalesRegister) ([]byte, error)
	SummaryReturnDocument(ctx context.Context, sr gst.SummaryReturn) ([]byte, error)
}
