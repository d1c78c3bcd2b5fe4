package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RateTier – immutable value object
// ---------------------------------------------------------------------------

// RateTier names a refinancing monthly-rate preset. P1 and P2 carry fixed
// rates; Manual takes a caller-supplied rate and requires external
// authorization.
type RateTier struct {
	value string
}

const (
	rateTierP1     = "P1"
	rateTierP2     = "P2"
	rateTierManual = "MANUAL"
)

var (
	RateTierP1     = RateTier{value: rateTierP1}
	RateTierP2     = RateTier{value: rateTierP2}
	RateTierManual = RateTier{value: rateTierManual}
)

var validRateTiers = map[string]RateTier{
	rateTierP1:     RateTierP1,
	rateTierP2:     RateTierP2,
	rateTierManual: RateTierManual,
}

// NewRateTier creates a RateTier from a raw string.
func NewRateTier(s string) (RateTier, error) {
	v, ok := validRateTiers[s]
	if !ok {
		return RateTier{}, fmt.Errorf("invalid rate tier: %q", s)
	}
	return v, nil
}

// String returns the string representation of the tier.
func (t RateTier) String() string { return t.value }

// IsZero returns true if the tier has not been initialised.
func (t RateTier) IsZero() bool { return t.value == "" }

// Equal returns true when both tiers carry the same value.
func (t RateTier) Equal(other RateTier) bool { return t.value == other.value }

// IsManual reports whether the tier takes a caller-supplied rate.
func (t RateTier) IsManual() bool { return t.value == rateTierManual }
