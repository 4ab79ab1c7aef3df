package reports_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-ledger/internal/application/reports"
	"github.com/jhoicas/gst-ledger/internal/domain"
	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
	"github.com/jhoicas/gst-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeRepo almacén en memoria indexado por período.
type fakeRepo struct {
	mu      sync.Mutex
	byMonth map[string][]entity.LedgerEntry
	err     error
	calls   int
}

func (r *fakeRepo) Create(_ context.Context, e *entity.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byMonth == nil {
		r.byMonth = make(map[string][]entity.LedgerEntry)
	}
	r.byMonth[e.Date[:7]] = append(r.byMonth[e.Date[:7]], *e)
	return nil
}

func (r *fakeRepo) ListByPeriod(ctx context.Context, period string) ([]entity.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.err != nil {
		return nil, r.err
	}
	return append([]entity.LedgerEntry(nil), r.byMonth[period]...), nil
}

func newUseCase(repo *fakeRepo) *reports.UseCase {
	log := logger.NewNop()
	return reports.NewUseCase(reports.NewRepositorySource(repo, log), gst.DefaultConfig(), log)
}

func sale(date string, amount, rate float64) entity.LedgerEntry {
	return entity.LedgerEntry{Date: date, Type: entity.EntryTypeSale, Amount: entity.Float(amount), GSTRate: entity.Float(rate)}
}

func purchase(date string, amount, rate float64) entity.LedgerEntry {
	return entity.LedgerEntry{Date: date, Type: entity.EntryTypePurchase, Amount: entity.Float(amount), GSTRate: entity.Float(rate)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateSalesRegister_PeriodoInvalidoAntesDeConsultar(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	for _, p := range []string{"2025", "2025-13", "25-10", ""} {
		_, err := uc.GenerateSalesRegister(context.Background(), p)
		require.Error(t, err)

		ce, ok := domain.AsClassified(err)
		require.True(t, ok, "debe ser ClassifiedError")
		assert.Equal(t, domain.CodeInvalidPeriod, ce.Code)
		assert.True(t, ce.Recoverable)
		assert.False(t, ce.Retryable)
		assert.NotEqual(t, ce.Message, ce.UserMessage)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Zero(t, repo.calls, "no debe consultar el almacén")
}

func TestGenerateSalesRegister_SinDatos(t *testing.T) {
	uc := newUseCase(&fakeRepo{})

	_, err := uc.GenerateSalesRegister(context.Background(), "2025-10")
	ce, ok := domain.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeNoData, ce.Code)
	assert.True(t, ce.Recoverable)
	assert.True(t, ce.Retryable)
	assert.Equal(t, "2025-10", ce.Context["period"])
}

func TestGenerateSalesRegister_Filas(t *testing.T) {
	repo := &fakeRepo{}
	ctx := context.Background()
	for _, e := range []entity.LedgerEntry{
		sale("2025-10-01", 1180, 18),
		purchase("2025-10-02", 112, 12),
		sale("2025-10-03", -118, 18),
	} {
		e := e
		require.NoError(t, repo.Create(ctx, &e))
	}

	reg, err := newUseCase(repo).GenerateSalesRegister(ctx, "2025-10")
	require.NoError(t, err)
	require.Len(t, reg.Rows, 2)
	assert.Equal(t, "2025-10-01", reg.Rows[0].Date)
	assert.True(t, reg.Rows[1].IsReturn)
	assert.False(t, reg.Heuristic)
}

// Un fallo del almacén se degrada a "sin asientos": el libro de ventas responde NO_DATA.
func TestGenerateSalesRegister_AlmacenCaidoSeDegrada(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	_, err := newUseCase(repo).GenerateSalesRegister(context.Background(), "2025-10")

	ce, ok := domain.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeNoData, ce.Code)
}

func TestGenerateSalesRegister_CancelacionAbortaSinFilasParciales(t *testing.T) {
	repo := &fakeRepo{}
	e := sale("2025-10-01", 100, 5)
	require.NoError(t, repo.Create(context.Background(), &e))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg, err := newUseCase(repo).GenerateSalesRegister(ctx, "2025-10")
	assert.Nil(t, reg)
	assert.ErrorIs(t, err, context.Canceled)
	_, classified := domain.AsClassified(err)
	assert.False(t, classified)
}

// ──────────────────────────────────────────────────────────────────────────────
// Declaración resumen
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateSummaryReturn_VacioEsValido(t *testing.T) {
	sr, err := newUseCase(&fakeRepo{}).GenerateSummaryReturn(context.Background(), "2025-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-10", sr.Period)
	assert.True(t, sr.NetLiability.IsZero())
}

func TestGenerateSummaryReturn_PeriodoInvalido(t *testing.T) {
	_, err := newUseCase(&fakeRepo{}).GenerateSummaryReturn(context.Background(), "2025/10")
	ce, ok := domain.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeInvalidPeriod, ce.Code)
}

func TestGenerateSummaryReturn_SaldoAFavorEsCero(t *testing.T) {
	repo := &fakeRepo{}
	ctx := context.Background()
	for _, e := range []entity.LedgerEntry{
		sale("2025-10-01", 118, 18),
		purchase("2025-10-02", 2360, 18),
	} {
		e := e
		require.NoError(t, repo.Create(ctx, &e))
	}
	sr, err := newUseCase(repo).GenerateSummaryReturn(ctx, "2025-10")
	require.NoError(t, err)
	assert.Equal(t, "0.00", sr.NetLiability.StringFixed(2))
	assert.Equal(t, "360.00", sr.InwardTax.StringFixed(2))
}

func TestGenerateProfitAndLoss(t *testing.T) {
	repo := &fakeRepo{}
	ctx := context.Background()
	e := sale("2025-10-01", 1180, 18)
	require.NoError(t, repo.Create(ctx, &e))

	pl, err := newUseCase(repo).GenerateProfitAndLoss(ctx, "2025-10")
	require.NoError(t, err)
	assert.Equal(t, 1, pl.TotalEntries)
	assert.Equal(t, "1180.00", pl.NetProfit.StringFixed(2))

	_, err = newUseCase(repo).GenerateProfitAndLoss(ctx, "oct")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Reportes de distintos períodos se calculan en paralelo sin interferir.
func TestReportes_Concurrentes(t *testing.T) {
	repo := &fakeRepo{}
	ctx := context.Background()
	for m := 1; m <= 12; m++ {
		e := sale(fmt.Sprintf("2025-%02d-15", m), float64(m)*118, 18)
		require.NoError(t, repo.Create(ctx, &e))
	}
	uc := newUseCase(repo)

	var wg sync.WaitGroup
	results := make([]string, 12)
	for m := 1; m <= 12; m++ {
		wg.Add(1)
		go func(m int) {
			defer wg.Done()
			sr, err := uc.GenerateSummaryReturn(ctx, fmt.Sprintf("2025-%02d", m))
			if err == nil {
				results[m-1] = sr.OutwardTax.StringFixed(2)
			}
		}(m)
	}
	wg.Wait()
	for m := 1; m <= 12; m++ {
		assert.Equal(t, fmt.Sprintf("%d.00", m*18), results[m-1])
	}
}
