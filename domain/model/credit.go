package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amsolucionesw-art/financiera-ledger/domain/event"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
	"github.com/amsolucionesw-art/financiera-ledger/money"
)

// ---------------------------------------------------------------------------
// Credit aggregate root (Installment Ledger)
// ---------------------------------------------------------------------------

// Credit is an immutable aggregate. Mutations return a new copy.
//
// A fixed or progressive credit carries a generated installment set; an
// open-ended credit carries exactly one rolling installment and tracks its
// outstanding capital and cumulative interest received. The credit status is
// always derived from the installments, never stored independently of them.
type Credit struct {
	id               string
	modality         valueobject.Modality
	periodicity      valueobject.Periodicity
	principal        decimal.Decimal
	installmentCount int
	nominalRate      decimal.Decimal
	originCreditID   string
	anchorDate       time.Time
	capital          decimal.Decimal
	interestPaid     decimal.Decimal
	status           valueobject.CreditStatus
	installments     []Installment
	version          int
	createdAt        time.Time
	updatedAt        time.Time
	domainEvents     []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewCredit creates a credit at disbursement and opens its ledger. Fixed and
// progressive credits get a generated installment plan; open-ended credits
// get a single rolling installment anchored to startDate.
func NewCredit(
	modality valueobject.Modality,
	periodicity valueobject.Periodicity,
	principal decimal.Decimal,
	nominalRate decimal.Decimal,
	installmentCount int,
	originCreditID string,
	startDate time.Time,
	now time.Time,
) (Credit, error) {
	if modality.IsZero() {
		return Credit{}, errors.New("modality is required")
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return Credit{}, errors.New("principal must be positive")
	}
	if nominalRate.IsNegative() {
		return Credit{}, errors.New("nominal rate must not be negative")
	}
	if startDate.IsZero() {
		return Credit{}, errors.New("start date is required")
	}

	c := Credit{
		id:             uuid.New().String(),
		modality:       modality,
		periodicity:    periodicity,
		principal:      principal,
		nominalRate:    nominalRate,
		originCreditID: originCreditID,
		status:         valueobject.CreditStatusPending,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}

	if modality.IsOpenEnded() {
		c.anchorDate = startDate
		c.capital = principal
		c.installments = []Installment{{
			Number:    1,
			Scheduled: principal,
			Due:       valueobject.OpenEndedDueDate(),
			Status:    valueobject.InstallmentStatusPending,
		}}
	} else {
		if installmentCount <= 0 {
			return Credit{}, errors.New("installment count must be positive")
		}
		if periodicity.IsZero() {
			return Credit{}, errors.New("periodicity is required")
		}
		c.installmentCount = installmentCount
		c.installments = GenerateFixedPlan(principal, nominalRate, installmentCount, periodicity, startDate)
	}

	c.domainEvents = append(c.domainEvents, event.NewCreditDisbursed(
		c.id, modality.String(), principal, nominalRate, installmentCount, originCreditID,
	))

	return c, nil
}

// ReconstructCredit rebuilds a Credit aggregate from a persistence snapshot.
func ReconstructCredit(
	id string,
	modality valueobject.Modality,
	periodicity valueobject.Periodicity,
	principal decimal.Decimal,
	nominalRate decimal.Decimal,
	installmentCount int,
	originCreditID string,
	anchorDate time.Time,
	capital decimal.Decimal,
	interestPaid decimal.Decimal,
	status valueobject.CreditStatus,
	installments []Installment,
	version int,
	createdAt, updatedAt time.Time,
) Credit {
	return Credit{
		id:               id,
		modality:         modality,
		periodicity:      periodicity,
		principal:        principal,
		nominalRate:      nominalRate,
		installmentCount: installmentCount,
		originCreditID:   originCreditID,
		anchorDate:       anchorDate,
		capital:          capital,
		interestPaid:     interestPaid,
		status:           status,
		installments:     installments,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// ApplyInstallmentPayment replaces one installment with its post-allocation
// value and re-derives the credit status. Emits PaymentAllocated, plus
// CreditSettled when the whole ledger reaches zero.
func (c Credit) ApplyInstallmentPayment(
	updated Installment,
	paymentID string,
	appliedMora, appliedPrincipal decimal.Decimal,
	today time.Time,
) (Credit, error) {
	if c.status.IsTerminal() {
		return c, valueobject.CreditLockedError{CreditID: c.id, Status: c.status}
	}

	idx := -1
	for i := range c.installments {
		if c.installments[i].Number == updated.Number {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c, fmt.Errorf("installment %d not found on credit %s", updated.Number, c.id)
	}

	next := c
	next.installments = make([]Installment, len(c.installments))
	copy(next.installments, c.installments)
	next.installments[idx] = updated
	next.status = next.deriveStatus(today)
	next.updatedAt = today
	next.domainEvents = copyEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentAllocated(
		c.id, paymentID, updated.Number,
		appliedMora, decimal.Zero, appliedPrincipal, decimal.Zero,
		next.status.String(),
	))
	if next.status.Equal(valueobject.CreditStatusPaid) {
		next.domainEvents = append(next.domainEvents, event.NewCreditSettled(c.id, paymentID))
	}
	return next, nil
}

// ApplyOpenEndedPayment books an open-ended payment split into interest and
// capital. accruedMora is the late-fee total accrued as of the allocation; it
// is written to the rolling record so the figure holds once the interest it
// accrued on is paid. When settled is true the rolling installment is closed
// regardless of remaining accruals (the allocator has verified the settlement
// amount).
func (c Credit) ApplyOpenEndedPayment(
	paymentID string,
	appliedInterest, appliedCapital, accruedMora decimal.Decimal,
	settled bool,
	today time.Time,
) (Credit, error) {
	if c.status.IsTerminal() {
		return c, valueobject.CreditLockedError{CreditID: c.id, Status: c.status}
	}
	if !c.modality.IsOpenEnded() {
		return c, errors.New("credit has no open-ended ledger")
	}
	if len(c.installments) != 1 {
		return c, fmt.Errorf("open-ended credit %s must carry exactly one rolling installment", c.id)
	}

	next := c
	next.capital = money.ClampNonNegative(c.capital.Sub(appliedCapital))
	next.interestPaid = c.interestPaid.Add(appliedInterest)

	rolling := c.installments[0]
	rolling.Paid = rolling.Paid.Add(appliedCapital)
	rolling.Mora = money.ClampNonNegative(accruedMora)
	if settled {
		next.capital = decimal.Zero
		rolling.Paid = rolling.Scheduled.Sub(rolling.Discount)
		rolling.Mora = decimal.Zero
		rolling.Status = valueobject.InstallmentStatusPaid
	} else {
		rolling.Status = rolling.StatusAsOf(today)
	}
	next.installments = []Installment{rolling}

	if settled {
		next.status = valueobject.CreditStatusPaid
	} else {
		next.status = next.deriveStatus(today)
	}
	next.updatedAt = today
	next.domainEvents = copyEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentAllocated(
		c.id, paymentID, rolling.Number,
		decimal.Zero, appliedInterest, decimal.Zero, appliedCapital,
		next.status.String(),
	))
	if settled {
		next.domainEvents = append(next.domainEvents, event.NewCreditSettled(c.id, paymentID))
	}
	return next, nil
}

// Void terminally voids the credit. All payment and refinancing operations
// are rejected afterwards.
func (c Credit) Void(now time.Time) (Credit, error) {
	if c.status.IsTerminal() {
		return c, valueobject.CreditLockedError{CreditID: c.id, Status: c.status}
	}
	next := c
	next.status = valueobject.CreditStatusVoided
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCreditVoided(c.id))
	return next, nil
}

// MarkRefinanced terminally closes the credit, recording the credit its
// outstanding balance was transferred to.
func (c Credit) MarkRefinanced(newCreditID string, balance decimal.Decimal, now time.Time) (Credit, error) {
	if c.status.IsTerminal() {
		return c, valueobject.CreditLockedError{CreditID: c.id, Status: c.status}
	}
	next := c
	next.status = valueobject.CreditStatusRefinanced
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCreditRefinanced(c.id, newCreditID, balance))
	return next, nil
}

// deriveStatus folds the installment states into the credit state.
func (c Credit) deriveStatus(today time.Time) valueobject.CreditStatus {
	if c.status.IsTerminal() {
		return c.status
	}

	allPaid := true
	anyOverdue := false
	anyStarted := false
	for _, inst := range c.installments {
		st := inst.StatusAsOf(today)
		if !st.IsPaid() {
			allPaid = false
		} else {
			anyStarted = true
		}
		if st.Equal(valueobject.InstallmentStatusOverdue) {
			anyOverdue = true
		}
		if st.Equal(valueobject.InstallmentStatusPartial) {
			anyStarted = true
		}
	}

	switch {
	case allPaid:
		return valueobject.CreditStatusPaid
	case anyOverdue:
		return valueobject.CreditStatusOverdue
	case anyStarted:
		return valueobject.CreditStatusPartial
	default:
		return valueobject.CreditStatusPending
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c Credit) ID() string                           { return c.id }
func (c Credit) Modality() valueobject.Modality       { return c.modality }
func (c Credit) Periodicity() valueobject.Periodicity { return c.periodicity }
func (c Credit) Principal() decimal.Decimal           { return c.principal }
func (c Credit) InstallmentCount() int                { return c.installmentCount }
func (c Credit) NominalRate() decimal.Decimal         { return c.nominalRate }
func (c Credit) OriginCreditID() string               { return c.originCreditID }
func (c Credit) AnchorDate() time.Time                { return c.anchorDate }
func (c Credit) Capital() decimal.Decimal             { return c.capital }
func (c Credit) InterestPaid() decimal.Decimal        { return c.interestPaid }
func (c Credit) Status() valueobject.CreditStatus     { return c.status }
func (c Credit) Version() int                         { return c.version }
func (c Credit) CreatedAt() time.Time                 { return c.createdAt }
func (c Credit) UpdatedAt() time.Time                 { return c.updatedAt }

// DomainEvents returns a defensive copy of the pending event list.
func (c Credit) DomainEvents() []event.DomainEvent { return copyEvents(c.domainEvents) }

// Installments returns a defensive copy of the installment set.
func (c Credit) Installments() []Installment {
	if c.installments == nil {
		return nil
	}
	out := make([]Installment, len(c.installments))
	copy(out, c.installments)
	return out
}

// Installment returns the installment with the given number.
func (c Credit) Installment(number int) (Installment, bool) {
	for _, inst := range c.installments {
		if inst.Number == number {
			return inst, true
		}
	}
	return Installment{}, false
}

// RollingInstallment returns the single open-ended ledger record.
func (c Credit) RollingInstallment() (Installment, bool) {
	if !c.modality.IsOpenEnded() || len(c.installments) != 1 {
		return Installment{}, false
	}
	return c.installments[0], true
}

// ClearEvents returns a copy with an empty event list.
func (c Credit) ClearEvents() Credit {
	next := c
	next.domainEvents = nil
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
