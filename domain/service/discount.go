package service

import (
	"github.com/shopspring/decimal"

	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
	"github.com/amsolucionesw-art/financiera-ledger/money"
)

// DiscountPreview is the result of applying a discount to bounded bases.
type DiscountPreview struct {
	DiscountMora      decimal.Decimal
	DiscountPrincipal decimal.Decimal
	DiscountTotal     decimal.Decimal
	NetMora           decimal.Decimal
	NetPrincipal      decimal.Decimal
	NetBase           decimal.Decimal
}

// DiscountPolicy applies a discount to a mora-only or total base, never
// exceeding the amounts actually owed.
type DiscountPolicy struct{}

// NewDiscountPolicy returns the policy.
func NewDiscountPolicy() DiscountPolicy { return DiscountPolicy{} }

// Apply computes the discount split for the given scope and value.
//
// Scope MORA takes a percentage for open-ended credits and an absolute
// amount for fixed/progressive ones; either way the discount is capped at
// the mora owed and principal is untouched. Scope TOTAL takes a percentage
// of both bases and is consumed against mora first, then principal; any
// remainder beyond both bases is dropped.
//
// Out-of-bound values yield an InvalidDiscountError carrying the offending
// bound. Negative bases are floored to zero defensively.
func (DiscountPolicy) Apply(
	principalBase, moraBase decimal.Decimal,
	scope valueobject.DiscountScope,
	value decimal.Decimal,
	modality valueobject.Modality,
) (DiscountPreview, error) {
	principalBase = money.ClampNonNegative(principalBase)
	moraBase = money.ClampNonNegative(moraBase)

	identity := DiscountPreview{
		NetMora:      moraBase,
		NetPrincipal: principalBase,
		NetBase:      principalBase.Add(moraBase),
	}
	if scope.IsNone() {
		return identity, nil
	}

	var discountMora, discountPrincipal decimal.Decimal

	switch {
	case scope.Equal(valueobject.DiscountScopeMora):
		if modality.IsOpenEnded() {
			if err := validatePercent(scope, value); err != nil {
				return DiscountPreview{}, err
			}
			discountMora = money.Round2(moraBase.Mul(value).Div(hundred))
		} else {
			if value.IsNegative() || value.GreaterThan(moraBase) {
				return DiscountPreview{}, valueobject.InvalidDiscountError{
					Scope: scope, Value: value, Min: decimal.Zero, Max: moraBase,
				}
			}
			discountMora = value
		}
		discountMora = decimal.Min(discountMora, moraBase)

	case scope.Equal(valueobject.DiscountScopeTotal):
		if err := validatePercent(scope, value); err != nil {
			return DiscountPreview{}, err
		}
		raw := money.Round2(principalBase.Add(moraBase).Mul(value).Div(hundred))
		discountMora = decimal.Min(raw, moraBase)
		discountPrincipal = decimal.Min(raw.Sub(discountMora), principalBase)
	}

	netMora := moraBase.Sub(discountMora)
	netPrincipal := principalBase.Sub(discountPrincipal)
	return DiscountPreview{
		DiscountMora:      discountMora,
		DiscountPrincipal: discountPrincipal,
		DiscountTotal:     discountMora.Add(discountPrincipal),
		NetMora:           netMora,
		NetPrincipal:      netPrincipal,
		NetBase:           netPrincipal.Add(netMora),
	}, nil
}

func validatePercent(scope valueobject.DiscountScope, value decimal.Decimal) error {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return valueobject.InvalidDiscountError{
			Scope: scope, Value: value, Min: decimal.Zero, Max: hundred,
		}
	}
	return nil
}
