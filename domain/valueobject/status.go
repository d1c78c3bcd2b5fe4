package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// InstallmentStatus – immutable value object
// ---------------------------------------------------------------------------

// InstallmentStatus represents the lifecycle stage of a single installment.
type InstallmentStatus struct {
	value string
}

const (
	installmentStatusPending = "PENDING"
	installmentStatusPartial = "PARTIAL"
	installmentStatusOverdue = "OVERDUE"
	installmentStatusPaid    = "PAID"
)

var (
	InstallmentStatusPending = InstallmentStatus{value: installmentStatusPending}
	InstallmentStatusPartial = InstallmentStatus{value: installmentStatusPartial}
	InstallmentStatusOverdue = InstallmentStatus{value: installmentStatusOverdue}
	InstallmentStatusPaid    = InstallmentStatus{value: installmentStatusPaid}
)

var validInstallmentStatuses = map[string]InstallmentStatus{
	installmentStatusPending: InstallmentStatusPending,
	installmentStatusPartial: InstallmentStatusPartial,
	installmentStatusOverdue: InstallmentStatusOverdue,
	installmentStatusPaid:    InstallmentStatusPaid,
}

// NewInstallmentStatus creates an InstallmentStatus from a raw string.
func NewInstallmentStatus(s string) (InstallmentStatus, error) {
	v, ok := validInstallmentStatuses[s]
	if !ok {
		return InstallmentStatus{}, fmt.Errorf("invalid installment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s InstallmentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s InstallmentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s InstallmentStatus) Equal(other InstallmentStatus) bool { return s.value == other.value }

// IsPaid reports whether the installment is fully settled.
func (s InstallmentStatus) IsPaid() bool { return s.value == installmentStatusPaid }

// ---------------------------------------------------------------------------
// CreditStatus – immutable value object
// ---------------------------------------------------------------------------

// CreditStatus represents the lifecycle stage of a credit. PAID, REFINANCED
// and VOIDED are terminal: no mutating operation is accepted afterwards.
type CreditStatus struct {
	value string
}

const (
	creditStatusPending    = "PENDING"
	creditStatusPartial    = "PARTIAL"
	creditStatusOverdue    = "OVERDUE"
	creditStatusPaid       = "PAID"
	creditStatusRefinanced = "REFINANCED"
	creditStatusVoided     = "VOIDED"
)

var (
	CreditStatusPending    = CreditStatus{value: creditStatusPending}
	CreditStatusPartial    = CreditStatus{value: creditStatusPartial}
	CreditStatusOverdue    = CreditStatus{value: creditStatusOverdue}
	CreditStatusPaid       = CreditStatus{value: creditStatusPaid}
	CreditStatusRefinanced = CreditStatus{value: creditStatusRefinanced}
	CreditStatusVoided     = CreditStatus{value: creditStatusVoided}
)

var validCreditStatuses = map[string]CreditStatus{
	creditStatusPending:    CreditStatusPending,
	creditStatusPartial:    CreditStatusPartial,
	creditStatusOverdue:    CreditStatusOverdue,
	creditStatusPaid:       CreditStatusPaid,
	creditStatusRefinanced: CreditStatusRefinanced,
	creditStatusVoided:     CreditStatusVoided,
}

// NewCreditStatus creates a CreditStatus from a raw string.
func NewCreditStatus(s string) (CreditStatus, error) {
	v, ok := validCreditStatuses[s]
	if !ok {
		return CreditStatus{}, fmt.Errorf("invalid credit status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s CreditStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s CreditStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s CreditStatus) Equal(other CreditStatus) bool { return s.value == other.value }

// IsTerminal reports whether the credit accepts no further mutating
// operations (payments, refinancing, voiding).
func (s CreditStatus) IsTerminal() bool {
	switch s.value {
	case creditStatusPaid, creditStatusRefinanced, creditStatusVoided:
		return true
	}
	return false
}
