package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/gst-ledger/internal/domain"
	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
	"github.com/jhoicas/gst-ledger/pkg/logger"
)

// UseCase genera los reportes tributarios de un período.
// No guarda estado entre llamadas: cada reporte es función de la foto de
// asientos obtenida en esa llamada, por lo que puede invocarse en paralelo.
type UseCase struct {
	source     EntrySource
	normalizer *gst.Normalizer
	log        *logger.Logger
}

// NewUseCase construye el caso de uso con la configuración tributaria inyectada.
func NewUseCase(source EntrySource, cfg gst.Config, log *logger.Logger) *UseCase {
	return &UseCase{
		source:     source,
		normalizer: gst.NewNormalizer(cfg),
		log:        log,
	}
}

// GenerateSalesRegister arma el libro de ventas (GSTR-1).
// Errores: INVALID_PERIOD antes de consultar el almacén; NO_DATA si el período no tiene asientos.
func (uc *UseCase) GenerateSalesRegister(ctx context.Context, period string) (*gst.SalesRegister, error) {
	if !gst.IsValidPeriod(period) {
		return nil, domain.NewInvalidPeriodError(period)
	}
	entries, err := uc.fetch(ctx, period)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.NewNoDataError(period)
	}

	reg := uc.normalizer.BuildSalesRegister(period, entries)
	uc.log.Info().
		Str("period", period).
		Int("entries", len(entries)).
		Int("rows", len(reg.Rows)).
		Bool("heuristic", reg.Heuristic).
		Msg("reports: libro de ventas generado")
	return &reg, nil
}

// GenerateSummaryReturn arma la declaración resumen (GSTR-3B). Un período sin
// movimientos es válido y produce totales en cero.
func (uc *UseCase) GenerateSummaryReturn(ctx context.Context, period string) (*gst.SummaryReturn, error) {
	if !gst.IsValidPeriod(period) {
		return nil, domain.NewInvalidPeriodError(period)
	}
	entries, err := uc.fetch(ctx, period)
	if err != nil {
		return nil, err
	}

	sr := uc.normalizer.BuildSummaryReturn(period, entries)
	uc.log.Info().
		Str("period", period).
		Int("entries", len(entries)).
		Str("net_liability", sr.NetLiability.StringFixed(2)).
		Bool("heuristic", sr.Heuristic).
		Msg("reports: declaración resumen generada")
	return &sr, nil
}

// GenerateProfitAndLoss resumen de resultados del período (vacío es válido).
func (uc *UseCase) GenerateProfitAndLoss(ctx context.Context, period string) (*gst.ProfitAndLoss, error) {
	if !gst.IsValidPeriod(period) {
		return nil, domain.NewInvalidPeriodError(period)
	}
	entries, err := uc.fetch(ctx, period)
	if err != nil {
		return nil, err
	}
	pl := uc.normalizer.BuildProfitAndLoss(period, entries)
	uc.log.Info().
		Str("period", period).
		Int("entries", pl.TotalEntries).
		Msg("reports: estado de resultados generado")
	return &pl, nil
}

func (uc *UseCase) fetch(ctx context.Context, period string) ([]entity.LedgerEntry, error) {
	entries, err := uc.source.EntriesForPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("reports: obtener asientos %s: %w", period, err)
	}
	return entries, nil
}
