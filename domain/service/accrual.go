package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amsolucionesw-art/financiera-ledger/domain/calendar"
	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
	"github.com/amsolucionesw-art/financiera-ledger/money"
)

var hundred = decimal.NewFromInt(100)

// InstallmentOutstanding is the computed view of one scheduled installment.
type InstallmentOutstanding struct {
	PrincipalDue decimal.Decimal
	Mora         decimal.Decimal
	Total        decimal.Decimal
}

// OpenEndedOutstanding is the computed view of an open-ended credit as of a
// reference date. Interest and mora figures are pending (accrued and unpaid)
// amounts; the *Total fields cover cycles 1..current.
type OpenEndedOutstanding struct {
	Cycle         Cycle
	Capital       decimal.Decimal
	InterestCycle decimal.Decimal
	InterestTotal decimal.Decimal
	MoraCycle     decimal.Decimal
	MoraTotal     decimal.Decimal
	TotalDueToday decimal.Decimal
}

// AccrualEngine computes outstanding principal, interest and mora buckets.
//
// For scheduled installments the day-by-day mora application is an external
// authoritative process; the engine reads the accumulated figure from the
// record. For open-ended credits the engine computes interest and mora itself:
// each cycle's interest (capital x nominalRate/100) is charged when the
// cycle's end boundary is reached, and mora accrues daily on the cycle's
// unpaid interest once that same boundary is missed.
type AccrualEngine struct {
	cycles           *CycleResolver
	moraDailyRatePct decimal.Decimal
}

// NewAccrualEngine creates an engine charging the given daily mora
// percentage on unpaid open-ended cycle interest.
func NewAccrualEngine(cycles *CycleResolver, moraDailyRatePct decimal.Decimal) *AccrualEngine {
	return &AccrualEngine{cycles: cycles, moraDailyRatePct: moraDailyRatePct}
}

// Outstanding computes the buckets of one scheduled installment.
func (e *AccrualEngine) Outstanding(inst model.Installment) InstallmentOutstanding {
	principal := inst.PrincipalDue()
	mora := money.ClampNonNegative(inst.Mora)
	return InstallmentOutstanding{
		PrincipalDue: principal,
		Mora:         mora,
		Total:        principal.Add(mora),
	}
}

// OutstandingOpenEnded computes capital, pending interest and pending mora
// for an open-ended credit as of today. Interest payments received so far are
// consumed oldest cycle first.
//
// Mora already booked on the rolling record floors the recomputed figure:
// accrued late fees never shrink when the interest they accrued on is later
// paid. They leave the ledger only through settlement or a discount.
func (e *AccrualEngine) OutstandingOpenEnded(c model.Credit, today time.Time) (OpenEndedOutstanding, error) {
	if !c.Modality().IsOpenEnded() {
		return OpenEndedOutstanding{}, errors.New("credit has no open-ended ledger")
	}

	cyc := e.cycles.Resolve(c.AnchorDate(), today)
	capital := money.ClampNonNegative(c.Capital())
	out := OpenEndedOutstanding{Cycle: cyc, Capital: capital}

	cycleInterest := money.Round2(capital.Mul(c.NominalRate()).Div(hundred))

	var unpaid, mora [MaxCycles]decimal.Decimal
	if !c.AnchorDate().IsZero() && cycleInterest.IsPositive() {
		day := calendar.DateOnly(today, e.cycles.loc)
		remainingPaid := money.ClampNonNegative(c.InterestPaid())

		for i := 1; i <= MaxCycles; i++ {
			due := e.cycles.CycleDueDate(c.AnchorDate(), i)
			if calendar.Compare(day, due) < 0 {
				break
			}

			applied := decimal.Min(remainingPaid, cycleInterest)
			remainingPaid = remainingPaid.Sub(applied)
			unpaid[i-1] = cycleInterest.Sub(applied)
			out.InterestTotal = out.InterestTotal.Add(unpaid[i-1])

			if unpaid[i-1].IsPositive() {
				if days := calendar.DaysBetween(due, day); days > 0 {
					mora[i-1] = money.Round2(unpaid[i-1].
						Mul(e.moraDailyRatePct).Div(hundred).
						Mul(decimal.NewFromInt(int64(days))))
					out.MoraTotal = out.MoraTotal.Add(mora[i-1])
				}
			}
		}
	}

	out.InterestCycle = unpaid[cyc.Index-1]
	out.MoraCycle = mora[cyc.Index-1]
	out.InterestTotal = NormalizeTotal(out.InterestCycle, out.InterestTotal)
	out.MoraTotal = NormalizeTotal(out.MoraCycle, out.MoraTotal)
	if rolling, ok := c.RollingInstallment(); ok {
		out.MoraTotal = NormalizeTotal(money.ClampNonNegative(rolling.Mora), out.MoraTotal)
	}
	out.TotalDueToday = capital.Add(out.InterestTotal).Add(out.MoraTotal)

	return out, nil
}

// OutstandingBalance computes the modality-appropriate total a refinancing
// offer would absorb: unpaid principal plus mora across installments for
// scheduled credits, or the full amount due today for open-ended ones.
func (e *AccrualEngine) OutstandingBalance(c model.Credit, today time.Time) (decimal.Decimal, error) {
	if c.Modality().IsOpenEnded() {
		out, err := e.OutstandingOpenEnded(c, today)
		if err != nil {
			return decimal.Zero, err
		}
		return out.TotalDueToday, nil
	}

	total := decimal.Zero
	for _, inst := range c.Installments() {
		total = total.Add(e.Outstanding(inst).Total)
	}
	return total, nil
}

// NormalizeTotal guards reported totals against upstream aliasing drift: a
// total can never be less than its own current-cycle component.
func NormalizeTotal(cycleComponent, total decimal.Decimal) decimal.Decimal {
	if total.LessThan(cycleComponent) {
		return cycleComponent
	}
	return total
}
