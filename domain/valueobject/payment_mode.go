package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PaymentMode – immutable value object
// ---------------------------------------------------------------------------

// PaymentMode selects how a payment is applied against a ledger entry.
type PaymentMode struct {
	value string
}

const (
	paymentModePartial      = "PARTIAL"
	paymentModeSettlement   = "SETTLEMENT"
	paymentModeInterestOnly = "INTEREST_ONLY"
)

var (
	// PaymentModePartial applies any positive amount in priority order.
	PaymentModePartial = PaymentMode{value: paymentModePartial}
	// PaymentModeSettlement fully discharges the entry; the amount must match
	// the net outstanding balance after discount.
	PaymentModeSettlement = PaymentMode{value: paymentModeSettlement}
	// PaymentModeInterestOnly is a partial payment whose suggested amount is
	// the pending cycle interest of an open-ended credit.
	PaymentModeInterestOnly = PaymentMode{value: paymentModeInterestOnly}
)

var validPaymentModes = map[string]PaymentMode{
	paymentModePartial:      PaymentModePartial,
	paymentModeSettlement:   PaymentModeSettlement,
	paymentModeInterestOnly: PaymentModeInterestOnly,
}

// NewPaymentMode creates a PaymentMode from a raw string.
func NewPaymentMode(s string) (PaymentMode, error) {
	v, ok := validPaymentModes[s]
	if !ok {
		return PaymentMode{}, fmt.Errorf("invalid payment mode: %q", s)
	}
	return v, nil
}

// String returns the string representation of the mode.
func (m PaymentMode) String() string { return m.value }

// IsZero returns true if the mode has not been initialised.
func (m PaymentMode) IsZero() bool { return m.value == "" }

// Equal returns true when both modes carry the same value.
func (m PaymentMode) Equal(other PaymentMode) bool { return m.value == other.value }

// IsSettlement reports whether the payment must discharge the full balance.
func (m PaymentMode) IsSettlement() bool { return m.value == paymentModeSettlement }

// IsPartial reports whether the payment may cover less than the full balance.
func (m PaymentMode) IsPartial() bool {
	return m.value == paymentModePartial || m.value == paymentModeInterestOnly
}
