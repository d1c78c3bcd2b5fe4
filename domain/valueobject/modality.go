package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Modality – immutable value object
// ---------------------------------------------------------------------------

// Modality identifies the repayment structure of a credit.
type Modality struct {
	value string
}

const (
	modalityFixed       = "FIXED"
	modalityProgressive = "PROGRESSIVE"
	modalityOpenEnded   = "OPEN_ENDED"
)

var (
	ModalityFixed       = Modality{value: modalityFixed}
	ModalityProgressive = Modality{value: modalityProgressive}
	ModalityOpenEnded   = Modality{value: modalityOpenEnded}
)

var validModalities = map[string]Modality{
	modalityFixed:       ModalityFixed,
	modalityProgressive: ModalityProgressive,
	modalityOpenEnded:   ModalityOpenEnded,
}

// NewModality creates a Modality from a raw string.
func NewModality(s string) (Modality, error) {
	v, ok := validModalities[s]
	if !ok {
		return Modality{}, fmt.Errorf("invalid modality: %q", s)
	}
	return v, nil
}

// String returns the string representation of the modality.
func (m Modality) String() string { return m.value }

// IsZero returns true if the modality has not been initialised.
func (m Modality) IsZero() bool { return m.value == "" }

// Equal returns true when both modalities carry the same value.
func (m Modality) Equal(other Modality) bool { return m.value == other.value }

// IsOpenEnded reports whether the credit has no fixed installment schedule:
// capital stays outstanding across rolling monthly cycles until settled or
// refinanced.
func (m Modality) IsOpenEnded() bool { return m.value == modalityOpenEnded }

// HasSchedule reports whether the credit carries a generated installment set.
func (m Modality) HasSchedule() bool {
	return m.value == modalityFixed || m.value == modalityProgressive
}
