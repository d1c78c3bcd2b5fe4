package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
	"github.com/amsolucionesw-art/financiera-ledger/money"
)

// AllocationResult describes how a payment was distributed across the
// outstanding buckets of one ledger entry.
type AllocationResult struct {
	Credit      model.Credit
	Installment model.Installment

	AppliedMora      decimal.Decimal
	AppliedInterest  decimal.Decimal
	AppliedPrincipal decimal.Decimal
	AppliedCapital   decimal.Decimal
	Surplus          decimal.Decimal

	// SuggestedAmount is the interest-only convenience figure for open-ended
	// credits; callers may present it as the default partial amount.
	SuggestedAmount decimal.Decimal

	// ExceedsRecommendation flags a partial payment above the recommended
	// figure: the net installment total for scheduled credits (the excess is
	// reported as Surplus), or the pending-interest suggestion for
	// open-ended ones. The payment is accepted either way.
	ExceedsRecommendation bool

	Settled bool
}

// PaymentAllocator distributes a payment against a specific installment or
// open-ended cycle in fixed priority order: late fee first, then principal
// (for open-ended credits: pending cycle interest first, then capital).
//
// The allocator accepts only new Payment records and performs no implicit
// upsert; replay protection via unique payment identifiers is the caller's
// concern.
type PaymentAllocator struct {
	accrual   *AccrualEngine
	discounts DiscountPolicy
}

// NewPaymentAllocator wires dependencies.
func NewPaymentAllocator(accrual *AccrualEngine, discounts DiscountPolicy) *PaymentAllocator {
	return &PaymentAllocator{accrual: accrual, discounts: discounts}
}

// Allocate applies the payment to the credit as of today.
func (a *PaymentAllocator) Allocate(c model.Credit, p model.Payment, today time.Time) (AllocationResult, error) {
	if c.Status().IsTerminal() {
		return AllocationResult{}, valueobject.CreditLockedError{CreditID: c.ID(), Status: c.Status()}
	}
	if !p.Amount.IsPositive() {
		return AllocationResult{}, fmt.Errorf("payment amount %s: %w", p.Amount, valueobject.ErrInvalidAmount)
	}

	if c.Modality().IsOpenEnded() {
		return a.allocateOpenEnded(c, p, today)
	}
	return a.allocateScheduled(c, p, today)
}

func (a *PaymentAllocator) allocateScheduled(c model.Credit, p model.Payment, today time.Time) (AllocationResult, error) {
	inst, ok := c.Installment(p.InstallmentNumber)
	if !ok {
		return AllocationResult{}, fmt.Errorf("installment %d not found on credit %s", p.InstallmentNumber, c.ID())
	}

	preview, err := a.discounts.Apply(inst.PrincipalDue(), inst.Mora, p.DiscountScope, p.DiscountValue, c.Modality())
	if err != nil {
		return AllocationResult{}, err
	}

	if p.Mode.IsSettlement() {
		if !money.Round2(p.Amount).Equal(money.Round2(preview.NetBase)) {
			return AllocationResult{}, fmt.Errorf(
				"settlement amount %s does not match net balance %s: %w",
				p.Amount, preview.NetBase, valueobject.ErrInvalidAmount)
		}

		updated := inst
		updated.Discount = inst.Discount.Add(preview.DiscountPrincipal)
		updated.Paid = updated.Scheduled.Sub(updated.Discount)
		updated.Mora = decimal.Zero
		updated.Status = valueobject.InstallmentStatusPaid

		credit, err := c.ApplyInstallmentPayment(updated, p.ID, preview.NetMora, preview.NetPrincipal, today)
		if err != nil {
			return AllocationResult{}, err
		}
		return AllocationResult{
			Credit:           credit,
			Installment:      updated,
			AppliedMora:      preview.NetMora,
			AppliedPrincipal: preview.NetPrincipal,
			Settled:          credit.Status().Equal(valueobject.CreditStatusPaid),
		}, nil
	}

	if inst.StatusAsOf(today).IsPaid() {
		return AllocationResult{}, fmt.Errorf(
			"installment %d is already settled: %w", inst.Number, valueobject.ErrPartialNotAllowed)
	}

	// Priority order: mora first, then principal up to the ledger capacity.
	payMora := decimal.Min(p.Amount, preview.NetMora)
	remainder := p.Amount.Sub(payMora)
	payPrincipal := decimal.Min(remainder, preview.NetPrincipal)
	surplus := remainder.Sub(payPrincipal)

	updated := inst
	updated.Discount = inst.Discount.Add(preview.DiscountPrincipal)
	updated.Mora = preview.NetMora.Sub(payMora)
	updated.Paid = inst.Paid.Add(payPrincipal)
	updated.Status = updated.StatusAsOf(today)

	credit, err := c.ApplyInstallmentPayment(updated, p.ID, payMora, payPrincipal, today)
	if err != nil {
		return AllocationResult{}, err
	}
	return AllocationResult{
		Credit:                credit,
		Installment:           updated,
		AppliedMora:           payMora,
		AppliedPrincipal:      payPrincipal,
		Surplus:               surplus,
		ExceedsRecommendation: surplus.IsPositive(),
		Settled:               credit.Status().Equal(valueobject.CreditStatusPaid),
	}, nil
}

func (a *PaymentAllocator) allocateOpenEnded(c model.Credit, p model.Payment, today time.Time) (AllocationResult, error) {
	out, err := a.accrual.OutstandingOpenEnded(c, today)
	if err != nil {
		return AllocationResult{}, err
	}

	if p.Mode.IsSettlement() {
		preview, err := a.discounts.Apply(
			out.Capital.Add(out.InterestTotal), out.MoraTotal,
			p.DiscountScope, p.DiscountValue, c.Modality())
		if err != nil {
			return AllocationResult{}, err
		}
		if !money.Round2(p.Amount).Equal(money.Round2(preview.NetBase)) {
			return AllocationResult{}, fmt.Errorf(
				"settlement amount %s does not match net balance %s: %w",
				p.Amount, preview.NetBase, valueobject.ErrInvalidAmount)
		}

		appliedCapital := out.Capital
		appliedInterest := money.ClampNonNegative(p.Amount.Sub(out.Capital))
		credit, err := c.ApplyOpenEndedPayment(p.ID, appliedInterest, appliedCapital, decimal.Zero, true, today)
		if err != nil {
			return AllocationResult{}, err
		}
		rolling, _ := credit.RollingInstallment()
		return AllocationResult{
			Credit:          credit,
			Installment:     rolling,
			AppliedInterest: appliedInterest,
			AppliedCapital:  appliedCapital,
			Settled:         true,
		}, nil
	}

	// Hard business rule: once the credit sits in its final cycle, only full
	// settlement is accepted; the allocator never coerces a partial payment
	// into one.
	if out.Cycle.Index >= MaxCycles {
		return AllocationResult{}, fmt.Errorf(
			"open-ended credit %s is in cycle %d: %w", c.ID(), out.Cycle.Index, valueobject.ErrPartialNotAllowed)
	}
	if !p.DiscountScope.IsNone() {
		return AllocationResult{}, valueobject.InvalidDiscountError{
			Scope: p.DiscountScope, Value: p.DiscountValue, Min: decimal.Zero, Max: decimal.Zero,
		}
	}

	payInterest := decimal.Min(p.Amount, out.InterestTotal)
	remainder := p.Amount.Sub(payInterest)
	payCapital := decimal.Min(remainder, out.Capital)
	surplus := remainder.Sub(payCapital)

	settled := payCapital.Equal(out.Capital) &&
		payInterest.Equal(out.InterestTotal) &&
		out.MoraTotal.IsZero()

	credit, err := c.ApplyOpenEndedPayment(p.ID, payInterest, payCapital, out.MoraTotal, settled, today)
	if err != nil {
		return AllocationResult{}, err
	}
	rolling, _ := credit.RollingInstallment()
	return AllocationResult{
		Credit:                credit,
		Installment:           rolling,
		AppliedInterest:       payInterest,
		AppliedCapital:        payCapital,
		Surplus:               surplus,
		SuggestedAmount:       out.InterestTotal,
		ExceedsRecommendation: p.Amount.GreaterThan(out.InterestTotal) && !settled,
		Settled:               settled,
	}, nil
}
