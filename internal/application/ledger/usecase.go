package ledger

import (
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gst-ledger/internal/application/dto"
	"github.com/jhoicas/gst-ledger/internal/domain"
	"github.com/jhoicas/gst-ledger/internal/domain/entity"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
	"github.com/jhoicas/gst-ledger/internal/domain/repository"
)

// UseCase registro y consulta de asientos del libro.
type UseCase struct {
	repo repository.LedgerEntryRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.LedgerEntryRepository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// Create valida y persiste un asiento. A diferencia de los reportes, aquí un
// asiento inválido sí es error del caller (domain.ErrInvalidInput).
func (uc *UseCase) Create(ctx context.Context, in dto.CreateLedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	e := entity.LedgerEntry{
		ID:          uuid.New().String(),
		Date:        strings.TrimSpace(in.Date),
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Type:        strings.ToLower(strings.TrimSpace(in.Type)),
		GSTRate:     in.GSTRate,
		GSTAmount:   in.GSTAmount,
		CreatedAt:   uc.now().UTC(),
	}
	if !gst.IsValidEntry(e) {
		return nil, domain.ErrInvalidInput
	}
	if e.GSTRate != nil && !gst.IsSlab(*e.GSTRate) {
		return nil, domain.ErrInvalidInput
	}
	if e.GSTAmount != nil && (math.IsNaN(*e.GSTAmount) || math.IsInf(*e.GSTAmount, 0) || *e.GSTAmount < 0) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, &e); err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

// List devuelve los asientos del período, los más recientes primero.
func (uc *UseCase) List(ctx context.Context, period string) ([]dto.LedgerEntryResponse, error) {
	if !gst.IsValidPeriod(period) {
		return nil, domain.ErrInvalidInput
	}
	entries, err := uc.repo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toResponse(e))
	}
	slices.Reverse(out)
	return out, nil
}

func toResponse(e entity.LedgerEntry) *dto.LedgerEntryResponse {
	var amount float64
	if e.Amount != nil {
		amount = *e.Amount
	}
	return &dto.LedgerEntryResponse{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Amount:      amount,
		Type:        e.Type,
		GSTRate:     e.GSTRate,
		GSTAmount:   e.GSTAmount,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
