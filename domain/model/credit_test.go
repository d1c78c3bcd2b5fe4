package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsolucionesw-art/financiera-ledger/domain/event"
	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
)

var testNow = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func fixedCredit(t *testing.T) model.Credit {
	t.Helper()
	c, err := model.NewCredit(
		valueobject.ModalityFixed, valueobject.PeriodicityMonthly,
		decimal.NewFromInt(10000), decimal.NewFromInt(50), 5,
		"", testNow, testNow,
	)
	require.NoError(t, err)
	return c
}

func openEndedCredit(t *testing.T) model.Credit {
	t.Helper()
	c, err := model.NewCredit(
		valueobject.ModalityOpenEnded, valueobject.Periodicity{},
		decimal.NewFromInt(5000), decimal.NewFromInt(20), 0,
		"", testNow, testNow,
	)
	require.NoError(t, err)
	return c
}

func TestNewCredit(t *testing.T) {
	t.Run("fixed credit gets a plan", func(t *testing.T) {
		c := fixedCredit(t)
		assert.NotEmpty(t, c.ID())
		assert.True(t, c.Status().Equal(valueobject.CreditStatusPending))
		assert.Len(t, c.Installments(), 5)
		assert.Equal(t, 1, c.Version())

		evts := c.DomainEvents()
		require.Len(t, evts, 1)
		assert.IsType(t, event.CreditDisbursed{}, evts[0])
	})

	t.Run("open-ended credit gets one rolling record", func(t *testing.T) {
		c := openEndedCredit(t)
		assert.True(t, decimal.NewFromInt(5000).Equal(c.Capital()))
		assert.Equal(t, testNow, c.AnchorDate())

		rolling, ok := c.RollingInstallment()
		require.True(t, ok)
		assert.True(t, rolling.Due.IsOpenEnded())
		assert.True(t, decimal.NewFromInt(5000).Equal(rolling.Scheduled))
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := model.NewCredit(
			valueobject.Modality{}, valueobject.PeriodicityMonthly,
			decimal.NewFromInt(1000), decimal.NewFromInt(10), 3, "", testNow, testNow)
		assert.Error(t, err)

		_, err = model.NewCredit(
			valueobject.ModalityFixed, valueobject.PeriodicityMonthly,
			decimal.Zero, decimal.NewFromInt(10), 3, "", testNow, testNow)
		assert.Error(t, err)

		_, err = model.NewCredit(
			valueobject.ModalityFixed, valueobject.PeriodicityMonthly,
			decimal.NewFromInt(1000), decimal.NewFromInt(10), 0, "", testNow, testNow)
		assert.Error(t, err)

		_, err = model.NewCredit(
			valueobject.ModalityFixed, valueobject.Periodicity{},
			decimal.NewFromInt(1000), decimal.NewFromInt(10), 3, "", testNow, testNow)
		assert.Error(t, err)
	})
}

func TestCreditApplyInstallmentPayment(t *testing.T) {
	t.Run("replaces installment and re-derives status", func(t *testing.T) {
		c := fixedCredit(t)
		inst, ok := c.Installment(1)
		require.True(t, ok)

		inst.Paid = decimal.NewFromInt(1000)
		inst.Status = valueobject.InstallmentStatusPartial

		updated, err := c.ApplyInstallmentPayment(inst, "pay-1", decimal.Zero, decimal.NewFromInt(1000), testNow)
		require.NoError(t, err)

		assert.True(t, updated.Status().Equal(valueobject.CreditStatusPartial))
		got, _ := updated.Installment(1)
		assert.True(t, decimal.NewFromInt(1000).Equal(got.Paid))

		// The original aggregate is untouched.
		orig, _ := c.Installment(1)
		assert.True(t, orig.Paid.IsZero())
	})

	t.Run("settling every installment settles the credit", func(t *testing.T) {
		c := fixedCredit(t)
		for number := 1; number <= 5; number++ {
			inst, ok := c.Installment(number)
			require.True(t, ok)
			inst.Paid = inst.Scheduled
			inst.Status = valueobject.InstallmentStatusPaid

			var err error
			c, err = c.ApplyInstallmentPayment(inst, "pay", decimal.Zero, inst.Scheduled, testNow)
			require.NoError(t, err)
		}
		assert.True(t, c.Status().Equal(valueobject.CreditStatusPaid))

		var settled bool
		for _, e := range c.DomainEvents() {
			if _, ok := e.(event.CreditSettled); ok {
				settled = true
			}
		}
		assert.True(t, settled, "expected a CreditSettled event")
	})

	t.Run("terminal credit is locked", func(t *testing.T) {
		c := fixedCredit(t)
		voided, err := c.Void(testNow)
		require.NoError(t, err)

		inst, _ := voided.Installment(1)
		_, err = voided.ApplyInstallmentPayment(inst, "pay-1", decimal.Zero, decimal.NewFromInt(100), testNow)
		var locked valueobject.CreditLockedError
		require.ErrorAs(t, err, &locked)
		assert.Equal(t, voided.ID(), locked.CreditID)
	})

	t.Run("unknown installment number", func(t *testing.T) {
		c := fixedCredit(t)
		inst, _ := c.Installment(1)
		inst.Number = 99
		_, err := c.ApplyInstallmentPayment(inst, "pay-1", decimal.Zero, decimal.Zero, testNow)
		assert.Error(t, err)
	})
}

func TestCreditApplyOpenEndedPayment(t *testing.T) {
	t.Run("books interest, capital and accrued mora", func(t *testing.T) {
		c := openEndedCredit(t)
		updated, err := c.ApplyOpenEndedPayment(
			"pay-1", decimal.NewFromInt(1000), decimal.NewFromInt(2000),
			decimal.NewFromInt(125), false, testNow)
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(3000).Equal(updated.Capital()))
		assert.True(t, decimal.NewFromInt(1000).Equal(updated.InterestPaid()))
		rolling, _ := updated.RollingInstallment()
		assert.True(t, decimal.NewFromInt(2000).Equal(rolling.Paid))
		assert.True(t, decimal.NewFromInt(125).Equal(rolling.Mora),
			"late fee accrued so far is written to the rolling record")
		assert.True(t, updated.Status().Equal(valueobject.CreditStatusPartial))
	})

	t.Run("settlement closes the ledger", func(t *testing.T) {
		c := openEndedCredit(t)
		updated, err := c.ApplyOpenEndedPayment(
			"pay-1", decimal.NewFromInt(1000), decimal.NewFromInt(5000),
			decimal.Zero, true, testNow)
		require.NoError(t, err)

		assert.True(t, updated.Capital().IsZero())
		assert.True(t, updated.Status().Equal(valueobject.CreditStatusPaid))
		rolling, _ := updated.RollingInstallment()
		assert.True(t, rolling.Status.IsPaid())
		assert.True(t, rolling.Mora.IsZero())
	})

	t.Run("rejected on scheduled credits", func(t *testing.T) {
		c := fixedCredit(t)
		_, err := c.ApplyOpenEndedPayment(
			"pay-1", decimal.Zero, decimal.NewFromInt(100), decimal.Zero, false, testNow)
		assert.Error(t, err)
	})
}

func TestCreditTerminalTransitions(t *testing.T) {
	t.Run("void", func(t *testing.T) {
		c := fixedCredit(t)
		voided, err := c.Void(testNow)
		require.NoError(t, err)
		assert.True(t, voided.Status().Equal(valueobject.CreditStatusVoided))

		_, err = voided.Void(testNow)
		var locked valueobject.CreditLockedError
		assert.ErrorAs(t, err, &locked)
	})

	t.Run("mark refinanced", func(t *testing.T) {
		c := openEndedCredit(t)
		closed, err := c.MarkRefinanced("credit-new", decimal.NewFromInt(6125), testNow)
		require.NoError(t, err)
		assert.True(t, closed.Status().Equal(valueobject.CreditStatusRefinanced))

		var refi event.CreditRefinanced
		for _, e := range closed.DomainEvents() {
			if r, ok := e.(event.CreditRefinanced); ok {
				refi = r
			}
		}
		assert.Equal(t, "credit-new", refi.NewCreditID)
		assert.True(t, decimal.NewFromInt(6125).Equal(refi.TransferredBalance))

		_, err = closed.MarkRefinanced("credit-other", decimal.Zero, testNow)
		assert.Error(t, err)
	})
}

func TestCreditClearEvents(t *testing.T) {
	c := fixedCredit(t)
	require.NotEmpty(t, c.DomainEvents())
	cleared := c.ClearEvents()
	assert.Empty(t, cleared.DomainEvents())
	assert.NotEmpty(t, c.DomainEvents(), "original copy keeps its events")
}

func TestCreditDomainEventsIsACopy(t *testing.T) {
	c := fixedCredit(t)
	evts := c.DomainEvents()
	require.Len(t, evts, 1)

	evts[0] = event.NewCreditVoided(c.ID())
	_ = append(evts, event.NewCreditVoided(c.ID()))

	fresh := c.DomainEvents()
	require.Len(t, fresh, 1)
	assert.IsType(t, event.CreditDisbursed{}, fresh[0],
		"mutating the returned slice must not touch the aggregate")
}

func TestNewPayment(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := model.NewPayment(
			"credit-1", 1, decimal.NewFromInt(100), "cash", "",
			valueobject.PaymentMode{}, valueobject.DiscountScope{}, decimal.Zero, testNow)
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.True(t, p.Mode.IsPartial())
		assert.True(t, p.DiscountScope.IsNone())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := model.NewPayment(
			"credit-1", 1, decimal.Zero, "cash", "",
			valueobject.PaymentModePartial, valueobject.DiscountScopeNone, decimal.Zero, testNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidAmount)
	})

	t.Run("requires a credit id", func(t *testing.T) {
		_, err := model.NewPayment(
			"", 1, decimal.NewFromInt(100), "cash", "",
			valueobject.PaymentModePartial, valueobject.DiscountScopeNone, decimal.Zero, testNow)
		assert.Error(t, err)
	})
}
