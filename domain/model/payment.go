package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
)

// Payment is an immutable record of a received payment. Corrections are
// modeled as new Payments, never edits; the allocator performs no implicit
// upsert, so preventing double submission is the caller's responsibility via
// the unique payment ID.
type Payment struct {
	ID                string
	CreditID          string
	InstallmentNumber int
	Amount            decimal.Decimal
	MethodID          string
	Note              string
	Mode              valueobject.PaymentMode
	DiscountScope     valueobject.DiscountScope
	DiscountValue     decimal.Decimal
	ReceivedAt        time.Time
}

// NewPayment creates a payment record with a generated identifier.
func NewPayment(
	creditID string,
	installmentNumber int,
	amount decimal.Decimal,
	methodID, note string,
	mode valueobject.PaymentMode,
	discountScope valueobject.DiscountScope,
	discountValue decimal.Decimal,
	now time.Time,
) (Payment, error) {
	if creditID == "" {
		return Payment{}, valueobject.ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return Payment{}, valueobject.ErrInvalidAmount
	}
	if mode.IsZero() {
		mode = valueobject.PaymentModePartial
	}
	if discountScope.IsZero() {
		discountScope = valueobject.DiscountScopeNone
	}

	return Payment{
		ID:                uuid.New().String(),
		CreditID:          creditID,
		InstallmentNumber: installmentNumber,
		Amount:            amount,
		MethodID:          methodID,
		Note:              note,
		Mode:              mode,
		DiscountScope:     discountScope,
		DiscountValue:     discountValue,
		ReceivedAt:        now,
	}, nil
}
