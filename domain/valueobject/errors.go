package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrInvalidAmount flags unparseable, zero or negative money input on a
	// mutating operation.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrPartialNotAllowed flags a partial payment on a ledger entry that only
	// accepts full settlement (open-ended credit in cycle 3, or an already
	// settled installment).
	ErrPartialNotAllowed = errors.New("partial payment not allowed")

	// ErrInconsistentBalance flags a reported total that contradicts its
	// component sums.
	ErrInconsistentBalance = errors.New("inconsistent balance")

	// ErrInvalidRefinancingInput flags a non-positive installment count or a
	// negative balance or rate fed to the refinancing pricer.
	ErrInvalidRefinancingInput = errors.New("invalid refinancing input")

	// ErrManualRateUnauthorized flags manual-tier pricing requested without
	// the caller-supplied authorization flag.
	ErrManualRateUnauthorized = errors.New("manual rate tier not authorized")

	// ErrInvalidStatusTransition flags an illegal lifecycle transition.
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// ---------------------------------------------------------------------------
// Typed errors carrying caller context
// ---------------------------------------------------------------------------

// InvalidDiscountError reports a discount value outside its legal bounds.
type InvalidDiscountError struct {
	Scope DiscountScope
	Value decimal.Decimal
	Min   decimal.Decimal
	Max   decimal.Decimal
}

func (e InvalidDiscountError) Error() string {
	return fmt.Sprintf("invalid %s discount %s: must be within [%s, %s]",
		e.Scope, e.Value, e.Min, e.Max)
}

// CreditLockedError reports a mutating operation attempted on a terminal
// credit.
type CreditLockedError struct {
	CreditID string
	Status   CreditStatus
}

func (e CreditLockedError) Error() string {
	return fmt.Sprintf("credit %s is %s and accepts no further operations",
		e.CreditID, e.Status)
}
