package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Periodicity – immutable value object
// ---------------------------------------------------------------------------

// Periodicity is the installment cadence of a fixed or progressive credit.
type Periodicity struct {
	value string
}

const (
	periodicityWeekly   = "WEEKLY"
	periodicityBiweekly = "BIWEEKLY"
	periodicityMonthly  = "MONTHLY"
)

var (
	PeriodicityWeekly   = Periodicity{value: periodicityWeekly}
	PeriodicityBiweekly = Periodicity{value: periodicityBiweekly}
	PeriodicityMonthly  = Periodicity{value: periodicityMonthly}
)

var validPeriodicities = map[string]Periodicity{
	periodicityWeekly:   PeriodicityWeekly,
	periodicityBiweekly: PeriodicityBiweekly,
	periodicityMonthly:  PeriodicityMonthly,
}

// NewPeriodicity creates a Periodicity from a raw string.
func NewPeriodicity(s string) (Periodicity, error) {
	v, ok := validPeriodicities[s]
	if !ok {
		return Periodicity{}, fmt.Errorf("invalid periodicity: %q", s)
	}
	return v, nil
}

// String returns the string representation of the periodicity.
func (p Periodicity) String() string { return p.value }

// IsZero returns true if the periodicity has not been initialised.
func (p Periodicity) IsZero() bool { return p.value == "" }

// Equal returns true when both periodicities carry the same value.
func (p Periodicity) Equal(other Periodicity) bool { return p.value == other.value }

// PeriodsPerMonth returns how many installments fall in one month.
func (p Periodicity) PeriodsPerMonth() int {
	switch p.value {
	case periodicityWeekly:
		return 4
	case periodicityBiweekly:
		return 2
	default:
		return 1
	}
}

// IntervalDays returns the number of days between consecutive installments,
// or 0 for monthly cadence (which advances by calendar month instead).
func (p Periodicity) IntervalDays() int {
	switch p.value {
	case periodicityWeekly:
		return 7
	case periodicityBiweekly:
		return 15
	default:
		return 0
	}
}
