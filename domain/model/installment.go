package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
	"github.com/amsolucionesw-art/financiera-ledger/money"
)

// Installment is one period of a fixed or progressive credit, or the single
// rolling record of an open-ended credit. Scheduled carries the principal
// component only; late fee (mora) is tracked separately and is never reduced
// by principal payments.
type Installment struct {
	Number    int
	Scheduled decimal.Decimal
	Due       valueobject.DueDate
	Discount  decimal.Decimal
	Paid      decimal.Decimal
	Mora      decimal.Decimal
	Status    valueobject.InstallmentStatus
}

// PrincipalDue returns max(scheduled - discount - paid, 0).
func (i Installment) PrincipalDue() decimal.Decimal {
	return money.ClampNonNegative(i.Scheduled.Sub(i.Discount).Sub(i.Paid))
}

// TotalDue returns outstanding principal plus outstanding mora.
func (i Installment) TotalDue() decimal.Decimal {
	return i.PrincipalDue().Add(money.ClampNonNegative(i.Mora))
}

// IsSettled reports whether no principal or mora remains outstanding.
func (i Installment) IsSettled() bool {
	return i.PrincipalDue().IsZero() && !i.Mora.IsPositive()
}

// StatusAsOf derives the lifecycle state for a reference date. Open-ended
// installments are never overdue.
func (i Installment) StatusAsOf(today time.Time) valueobject.InstallmentStatus {
	if i.IsSettled() {
		return valueobject.InstallmentStatusPaid
	}
	if i.Due.PassedBy(today) {
		return valueobject.InstallmentStatusOverdue
	}
	if i.Paid.IsPositive() || i.Discount.IsPositive() {
		return valueobject.InstallmentStatusPartial
	}
	return valueobject.InstallmentStatusPending
}
