package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
	"github.com/amsolucionesw-art/financiera-ledger/money"
)

// RefinancingQuote prices a new fixed-installment plan from an outstanding
// balance.
type RefinancingQuote struct {
	Balance          decimal.Decimal
	Tier             valueobject.RateTier
	Periodicity      valueobject.Periodicity
	InstallmentCount int

	MonthlyRate       decimal.Decimal
	PeriodRate        decimal.Decimal
	TotalInterestPct  decimal.Decimal
	TotalInterest     decimal.Decimal
	NewTotal          decimal.Decimal
	InstallmentAmount decimal.Decimal
}

// RefinancePricer computes refinancing quotes. It is agnostic to the origin
// credit's modality: the balance it consumes must already be the
// modality-appropriate outstanding total (see AccrualEngine.OutstandingBalance).
type RefinancePricer struct {
	p1MonthlyRate decimal.Decimal
	p2MonthlyRate decimal.Decimal
}

// NewRefinancePricer creates a pricer with the given tier presets.
func NewRefinancePricer(p1MonthlyRate, p2MonthlyRate decimal.Decimal) *RefinancePricer {
	return &RefinancePricer{p1MonthlyRate: p1MonthlyRate, p2MonthlyRate: p2MonthlyRate}
}

// Price quotes a new plan.
//
//	periodRate        = monthlyRate / periodsPerMonth
//	totalInterestPct  = periodRate * installmentCount
//	newTotal          = balance + round2(balance * totalInterestPct / 100)
//	installmentAmount = round2(newTotal / installmentCount)
//
// The manual tier takes the caller-supplied monthly rate and requires the
// external authorization flag; no upper bound is enforced at this layer.
func (r *RefinancePricer) Price(
	balance decimal.Decimal,
	tier valueobject.RateTier,
	periodicity valueobject.Periodicity,
	installmentCount int,
	manualMonthlyRate decimal.Decimal,
	manualAuthorized bool,
) (RefinancingQuote, error) {
	if installmentCount < 1 {
		return RefinancingQuote{}, fmt.Errorf(
			"installment count %d: %w", installmentCount, valueobject.ErrInvalidRefinancingInput)
	}
	if balance.IsNegative() {
		return RefinancingQuote{}, fmt.Errorf(
			"balance %s: %w", balance, valueobject.ErrInvalidRefinancingInput)
	}
	if periodicity.IsZero() {
		return RefinancingQuote{}, fmt.Errorf(
			"periodicity is required: %w", valueobject.ErrInvalidRefinancingInput)
	}

	var monthlyRate decimal.Decimal
	switch {
	case tier.Equal(valueobject.RateTierP1):
		monthlyRate = r.p1MonthlyRate
	case tier.Equal(valueobject.RateTierP2):
		monthlyRate = r.p2MonthlyRate
	case tier.Equal(valueobject.RateTierManual):
		if !manualAuthorized {
			return RefinancingQuote{}, valueobject.ErrManualRateUnauthorized
		}
		if manualMonthlyRate.IsNegative() {
			return RefinancingQuote{}, fmt.Errorf(
				"manual monthly rate %s: %w", manualMonthlyRate, valueobject.ErrInvalidRefinancingInput)
		}
		monthlyRate = manualMonthlyRate
	default:
		return RefinancingQuote{}, fmt.Errorf(
			"rate tier is required: %w", valueobject.ErrInvalidRefinancingInput)
	}

	periodRate := monthlyRate.Div(decimal.NewFromInt(int64(periodicity.PeriodsPerMonth())))
	totalInterestPct := periodRate.Mul(decimal.NewFromInt(int64(installmentCount)))
	totalInterest := money.Round2(balance.Mul(totalInterestPct).Div(hundred))
	newTotal := balance.Add(totalInterest)
	installmentAmount := money.Round2(newTotal.Div(decimal.NewFromInt(int64(installmentCount))))

	return RefinancingQuote{
		Balance:           balance,
		Tier:              tier,
		Periodicity:       periodicity,
		InstallmentCount:  installmentCount,
		MonthlyRate:       monthlyRate,
		PeriodRate:        periodRate,
		TotalInterestPct:  totalInterestPct,
		TotalInterest:     totalInterest,
		NewTotal:          newTotal,
		InstallmentAmount: installmentAmount,
	}, nil
}
