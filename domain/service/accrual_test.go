package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
	"github.com/amsolucionesw-art/financiera-ledger/domain/service"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
)

func newAccrualEngine() *service.AccrualEngine {
	return service.NewAccrualEngine(
		service.NewCycleResolver(time.UTC),
		decimal.RequireFromString("2.5"),
	)
}

func newOpenEndedCredit(t *testing.T, principal int64, ratePct int64, anchor time.Time) model.Credit {
	t.Helper()
	c, err := model.NewCredit(
		valueobject.ModalityOpenEnded, valueobject.Periodicity{},
		decimal.NewFromInt(principal), decimal.NewFromInt(ratePct), 0,
		"", anchor, anchor,
	)
	require.NoError(t, err)
	return c
}

func reconstructOpenEnded(
	c model.Credit,
	capital, interestPaid decimal.Decimal,
) model.Credit {
	return model.ReconstructCredit(
		c.ID(), c.Modality(), c.Periodicity(), c.Principal(), c.NominalRate(),
		c.InstallmentCount(), c.OriginCreditID(), c.AnchorDate(),
		capital, interestPaid, c.Status(), c.Installments(),
		c.Version(), c.CreatedAt(), c.UpdatedAt(),
	)
}

func TestOutstandingOpenEnded(t *testing.T) {
	engine := newAccrualEngine()
	anchor := date(2025, time.January, 15)

	t.Run("no interest before the first boundary", func(t *testing.T) {
		c := newOpenEndedCredit(t, 5000, 20, anchor)
		out, err := engine.OutstandingOpenEnded(c, date(2025, time.February, 14))
		require.NoError(t, err)

		assert.Equal(t, 1, out.Cycle.Index)
		assert.True(t, out.InterestTotal.IsZero())
		assert.True(t, out.MoraTotal.IsZero())
		assert.True(t, decimal.NewFromInt(5000).Equal(out.TotalDueToday))
	})

	t.Run("first cycle interest charged at its boundary", func(t *testing.T) {
		// 5,000 at 20%: cycle interest 1,000, charged 2025-02-15. By
		// 2025-02-20 it is 5 days late: mora 1,000 x 2.5% x 5 = 125.
		c := newOpenEndedCredit(t, 5000, 20, anchor)
		out, err := engine.OutstandingOpenEnded(c, date(2025, time.February, 20))
		require.NoError(t, err)

		assert.Equal(t, 2, out.Cycle.Index)
		assert.True(t, decimal.NewFromInt(5000).Equal(out.Capital))
		assert.True(t, decimal.NewFromInt(1000).Equal(out.InterestTotal))
		assert.True(t, out.InterestCycle.IsZero(), "cycle 2 interest not yet due")
		assert.True(t, decimal.NewFromInt(125).Equal(out.MoraTotal))
		assert.True(t, decimal.NewFromInt(6125).Equal(out.TotalDueToday))
	})

	t.Run("interest charged exactly on the due day carries no mora", func(t *testing.T) {
		c := newOpenEndedCredit(t, 5000, 20, anchor)
		out, err := engine.OutstandingOpenEnded(c, date(2025, time.February, 15))
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(1000).Equal(out.InterestTotal))
		assert.True(t, out.MoraTotal.IsZero())
	})

	t.Run("interest payments consume oldest cycle first", func(t *testing.T) {
		c := newOpenEndedCredit(t, 5000, 20, anchor)
		// Two cycles charged (2,000 total), 1,500 already received: cycle 1
		// fully covered, cycle 2 owes 500.
		c = reconstructOpenEnded(c, decimal.NewFromInt(5000), decimal.NewFromInt(1500))

		out, err := engine.OutstandingOpenEnded(c, date(2025, time.March, 15))
		require.NoError(t, err)

		assert.Equal(t, 3, out.Cycle.Index)
		assert.True(t, decimal.NewFromInt(500).Equal(out.InterestTotal))
		// Only cycle 2's unpaid portion can accrue mora, and cycle 2 fell
		// due today, so none yet.
		assert.True(t, out.MoraTotal.IsZero())
	})

	t.Run("mora accrues per unpaid cycle", func(t *testing.T) {
		c := newOpenEndedCredit(t, 5000, 20, anchor)
		// Nothing paid, three cycles charged by 2025-04-20: cycle dues
		// 02-15, 03-15, 04-15 are 64, 36 and 5 days late.
		out, err := engine.OutstandingOpenEnded(c, date(2025, time.April, 20))
		require.NoError(t, err)

		assert.Equal(t, 3, out.Cycle.Index)
		assert.True(t, decimal.NewFromInt(3000).Equal(out.InterestTotal))
		// 1000 x 0.025 x (64 + 36 + 5)
		assert.True(t, decimal.NewFromInt(2625).Equal(out.MoraTotal))
		assert.True(t, decimal.NewFromInt(1000).Equal(out.InterestCycle))
		assert.True(t, decimal.NewFromInt(125).Equal(out.MoraCycle))
	})

	t.Run("never charges more than three cycles", func(t *testing.T) {
		c := newOpenEndedCredit(t, 5000, 20, anchor)
		out, err := engine.OutstandingOpenEnded(c, date(2026, time.January, 15))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(3000).Equal(out.InterestTotal))
	})

	t.Run("settled capital accrues nothing", func(t *testing.T) {
		c := newOpenEndedCredit(t, 5000, 20, anchor)
		c = reconstructOpenEnded(c, decimal.Zero, decimal.NewFromInt(3000))

		out, err := engine.OutstandingOpenEnded(c, date(2025, time.June, 1))
		require.NoError(t, err)
		assert.True(t, out.TotalDueToday.IsZero())
	})

	t.Run("rejects scheduled credits", func(t *testing.T) {
		c, err := model.NewCredit(
			valueobject.ModalityFixed, valueobject.PeriodicityMonthly,
			decimal.NewFromInt(1000), decimal.NewFromInt(10), 3, "", anchor, anchor)
		require.NoError(t, err)

		_, err = engine.OutstandingOpenEnded(c, anchor)
		assert.Error(t, err)
	})
}

func TestOutstandingScheduled(t *testing.T) {
	engine := newAccrualEngine()

	inst := model.Installment{
		Number:    1,
		Scheduled: decimal.NewFromInt(3000),
		Discount:  decimal.NewFromInt(500),
		Paid:      decimal.NewFromInt(1000),
		Mora:      decimal.NewFromInt(200),
	}
	out := engine.Outstanding(inst)
	assert.True(t, decimal.NewFromInt(1500).Equal(out.PrincipalDue))
	assert.True(t, decimal.NewFromInt(200).Equal(out.Mora))
	assert.True(t, decimal.NewFromInt(1700).Equal(out.Total))

	t.Run("negative mora is floored", func(t *testing.T) {
		inst.Mora = decimal.NewFromInt(-50)
		out := engine.Outstanding(inst)
		assert.True(t, out.Mora.IsZero())
	})
}

func TestOutstandingBalance(t *testing.T) {
	engine := newAccrualEngine()
	anchor := date(2025, time.January, 15)

	t.Run("open-ended uses the full due-today figure", func(t *testing.T) {
		c := newOpenEndedCredit(t, 5000, 20, anchor)
		balance, err := engine.OutstandingBalance(c, date(2025, time.February, 20))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(6125).Equal(balance))
	})

	t.Run("scheduled sums installment totals", func(t *testing.T) {
		c, err := model.NewCredit(
			valueobject.ModalityFixed, valueobject.PeriodicityMonthly,
			decimal.NewFromInt(10000), decimal.NewFromInt(50), 5, "", anchor, anchor)
		require.NoError(t, err)

		balance, err := engine.OutstandingBalance(c, anchor)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(15000).Equal(balance))
	})
}

func TestNormalizeTotal(t *testing.T) {
	cycle := decimal.NewFromInt(100)
	assert.True(t, decimal.NewFromInt(150).Equal(service.NormalizeTotal(cycle, decimal.NewFromInt(150))))
	assert.True(t, cycle.Equal(service.NormalizeTotal(cycle, decimal.NewFromInt(40))),
		"total is lifted to the cycle component")
	assert.True(t, cycle.Equal(service.NormalizeTotal(cycle, cycle)))
}
