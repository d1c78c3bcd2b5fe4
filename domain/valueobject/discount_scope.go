package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// DiscountScope – immutable value object
// ---------------------------------------------------------------------------

// DiscountScope bounds which outstanding buckets a discount may consume.
type DiscountScope struct {
	value string
}

const (
	discountScopeNone  = "NONE"
	discountScopeMora  = "MORA"
	discountScopeTotal = "TOTAL"
)

var (
	DiscountScopeNone  = DiscountScope{value: discountScopeNone}
	DiscountScopeMora  = DiscountScope{value: discountScopeMora}
	DiscountScopeTotal = DiscountScope{value: discountScopeTotal}
)

var validDiscountScopes = map[string]DiscountScope{
	discountScopeNone:  DiscountScopeNone,
	discountScopeMora:  DiscountScopeMora,
	discountScopeTotal: DiscountScopeTotal,
}

// NewDiscountScope creates a DiscountScope from a raw string. An empty string
// maps to DiscountScopeNone.
func NewDiscountScope(s string) (DiscountScope, error) {
	if s == "" {
		return DiscountScopeNone, nil
	}
	v, ok := validDiscountScopes[s]
	if !ok {
		return DiscountScope{}, fmt.Errorf("invalid discount scope: %q", s)
	}
	return v, nil
}

// String returns the string representation of the scope.
func (s DiscountScope) String() string { return s.value }

// IsZero returns true if the scope has not been initialised.
func (s DiscountScope) IsZero() bool { return s.value == "" }

// Equal returns true when both scopes carry the same value.
func (s DiscountScope) Equal(other DiscountScope) bool { return s.value == other.value }

// IsNone reports whether no discount applies.
func (s DiscountScope) IsNone() bool { return s.value == "" || s.value == discountScopeNone }
