package usecase

import (
	"context"
	"fmt"

	"github.com/amsolucionesw-art/financiera-ledger/application/dto"
	"github.com/amsolucionesw-art/financiera-ledger/domain/service"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
)

// PreviewRefinancingUseCase prices a refinancing offer without creating
// anything.
type PreviewRefinancingUseCase struct {
	pricer *service.RefinancePricer
}

// NewPreviewRefinancingUseCase wires dependencies.
func NewPreviewRefinancingUseCase(pricer *service.RefinancePricer) *PreviewRefinancingUseCase {
	return &PreviewRefinancingUseCase{pricer: pricer}
}

// Execute returns a quote for the requested plan.
func (uc *PreviewRefinancingUseCase) Execute(
	_ context.Context,
	req dto.PreviewRefinancingRequest,
) (dto.RefinancingQuote, error) {
	tier, err := valueobject.NewRateTier(req.Tier)
	if err != nil {
		return dto.RefinancingQuote{}, fmt.Errorf("parse rate tier: %w", err)
	}
	periodicity, err := valueobject.NewPeriodicity(req.Periodicity)
	if err != nil {
		return dto.RefinancingQuote{}, fmt.Errorf("parse periodicity: %w", err)
	}

	quote, err := uc.pricer.Price(
		req.Balance, tier, periodicity, req.InstallmentCount,
		req.ManualMonthlyRate, req.ManualAuthorized,
	)
	if err != nil {
		return dto.RefinancingQuote{}, fmt.Errorf("price refinancing: %w", err)
	}
	return quoteToDTO(quote), nil
}

func quoteToDTO(q service.RefinancingQuote) dto.RefinancingQuote {
	return dto.RefinancingQuote{
		Balance:           q.Balance,
		Tier:              q.Tier.String(),
		Periodicity:       q.Periodicity.String(),
		InstallmentCount:  q.InstallmentCount,
		MonthlyRate:       q.MonthlyRate,
		PeriodRate:        q.PeriodRate,
		TotalInterestPct:  q.TotalInterestPct,
		TotalInterest:     q.TotalInterest,
		NewTotal:          q.NewTotal,
		InstallmentAmount: q.InstallmentAmount,
	}
}
