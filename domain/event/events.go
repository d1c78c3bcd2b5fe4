package event

import (
	"github.com/shopspring/decimal"

	"github.com/amsolucionesw-art/financiera-ledger/events"
)

// DomainEvent is an alias for the shared events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Credit events
// ---------------------------------------------------------------------------

// CreditDisbursed is raised when a credit is created and its ledger opened.
type CreditDisbursed struct {
	events.BaseEvent
	Modality         string          `json:"modality"`
	Principal        decimal.Decimal `json:"principal"`
	NominalRate      decimal.Decimal `json:"nominal_rate"`
	InstallmentCount int             `json:"installment_count"`
	OriginCreditID   string          `json:"origin_credit_id,omitempty"`
}

func NewCreditDisbursed(
	creditID, modality string,
	principal, nominalRate decimal.Decimal,
	installmentCount int,
	originCreditID string,
) CreditDisbursed {
	return CreditDisbursed{
		BaseEvent:        events.NewBaseEvent("ledger.credit.disbursed", creditID, "Credit"),
		Modality:         modality,
		Principal:        principal,
		NominalRate:      nominalRate,
		InstallmentCount: installmentCount,
		OriginCreditID:   originCreditID,
	}
}

// PaymentAllocated is raised when a payment has been applied to the ledger.
type PaymentAllocated struct {
	events.BaseEvent
	PaymentID         string          `json:"payment_id"`
	InstallmentNumber int             `json:"installment_number"`
	AppliedMora       decimal.Decimal `json:"applied_mora"`
	AppliedInterest   decimal.Decimal `json:"applied_interest"`
	AppliedPrincipal  decimal.Decimal `json:"applied_principal"`
	AppliedCapital    decimal.Decimal `json:"applied_capital"`
	CreditStatus      string          `json:"credit_status"`
}

func NewPaymentAllocated(
	creditID, paymentID string,
	installmentNumber int,
	appliedMora, appliedInterest, appliedPrincipal, appliedCapital decimal.Decimal,
	creditStatus string,
) PaymentAllocated {
	return PaymentAllocated{
		BaseEvent:         events.NewBaseEvent("ledger.credit.payment_allocated", creditID, "Credit"),
		PaymentID:         paymentID,
		InstallmentNumber: installmentNumber,
		AppliedMora:       appliedMora,
		AppliedInterest:   appliedInterest,
		AppliedPrincipal:  appliedPrincipal,
		AppliedCapital:    appliedCapital,
		CreditStatus:      creditStatus,
	}
}

// CreditSettled is raised when every outstanding bucket of a credit reaches
// zero.
type CreditSettled struct {
	events.BaseEvent
	PaymentID string `json:"payment_id"`
}

func NewCreditSettled(creditID, paymentID string) CreditSettled {
	return CreditSettled{
		BaseEvent: events.NewBaseEvent("ledger.credit.settled", creditID, "Credit"),
		PaymentID: paymentID,
	}
}

// CreditVoided is raised when a credit is administratively voided.
type CreditVoided struct {
	events.BaseEvent
}

func NewCreditVoided(creditID string) CreditVoided {
	return CreditVoided{
		BaseEvent: events.NewBaseEvent("ledger.credit.voided", creditID, "Credit"),
	}
}

// CreditRefinanced is raised on the origin credit when its outstanding
// balance is transferred to a new credit.
type CreditRefinanced struct {
	events.BaseEvent
	NewCreditID        string          `json:"new_credit_id"`
	TransferredBalance decimal.Decimal `json:"transferred_balance"`
}

func NewCreditRefinanced(creditID, newCreditID string, balance decimal.Decimal) CreditRefinanced {
	return CreditRefinanced{
		BaseEvent:          events.NewBaseEvent("ledger.credit.refinanced", creditID, "Credit"),
		NewCreditID:        newCreditID,
		TransferredBalance: balance,
	}
}
