package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amsolucionesw-art/financiera-ledger/domain/calendar"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
	"github.com/amsolucionesw-art/financiera-ledger/money"
)

// GenerateFixedPlan computes the installment set of a fixed credit.
//
// The nominal rate is the total rate over the life of the credit:
//
//	total       = principal * (1 + totalRatePct/100)
//	installment = total / count
//
// The last installment absorbs the rounding remainder so the scheduled
// amounts sum to the total exactly. Due dates advance by the periodicity
// interval from startDate; monthly cadence clamps the day-of-month.
func GenerateFixedPlan(
	principal decimal.Decimal,
	totalRatePct decimal.Decimal,
	count int,
	periodicity valueobject.Periodicity,
	startDate time.Time,
) []Installment {
	if count <= 0 || principal.LessThanOrEqual(decimal.Zero) || totalRatePct.IsNegative() {
		return nil
	}

	hundred := decimal.NewFromInt(100)
	total := money.Round2(principal.Add(principal.Mul(totalRatePct).Div(hundred)))
	per := money.Round2(total.Div(decimal.NewFromInt(int64(count))))

	plan := make([]Installment, 0, count)
	for number := 1; number <= count; number++ {
		amount := per
		if number == count {
			amount = total.Sub(per.Mul(decimal.NewFromInt(int64(count - 1))))
		}

		var due time.Time
		if days := periodicity.IntervalDays(); days > 0 {
			due = startDate.AddDate(0, 0, number*days)
		} else {
			due = calendar.AddMonthsClamped(startDate, number)
		}

		plan = append(plan, Installment{
			Number:    number,
			Scheduled: amount,
			Due:       valueobject.ScheduledDueDate(due),
			Status:    valueobject.InstallmentStatusPending,
		})
	}

	return plan
}
