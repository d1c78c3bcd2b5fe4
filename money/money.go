// Package money provides decimal helpers for currency amounts, including a
// defensive parser for locale-ambiguous input coming from upstream systems.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds a currency amount to 2 decimal places, half up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ClampNonNegative floors negative amounts to zero. Used for defensive
// normalization of inconsistent upstream figures, never to mask business-rule
// violations.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseAmount parses a locale-ambiguous amount string into a decimal.
//
// Rules:
//   - both "." and "," present: the rightmost of the two is the decimal
//     separator, the other marks thousands ("1.234,56" and "1,234.56" both
//     parse to 1234.56)
//   - a single separator repeated, or followed by exactly three digits, marks
//     thousands ("1.234.567" -> 1234567, "1,234" -> 1234)
//   - a single separator otherwise is the decimal point ("12,34" -> 12.34)
//
// Empty or unparseable input yields zero. The function never returns an
// error: it is used defensively against inconsistent upstream data.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")

	switch {
	case dot >= 0 && comma >= 0:
		if dot > comma {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		}
	case dot >= 0:
		s = normalizeSingleSeparator(s, ".")
	case comma >= 0:
		s = normalizeSingleSeparator(s, ",")
	}

	if s == "" || !digitsAndAtMostOneDot(s) {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		d = d.Neg()
	}
	return d
}

// normalizeSingleSeparator resolves a string containing only one kind of
// separator into plain dot-decimal form, or "" when the grouping is invalid.
func normalizeSingleSeparator(s, sep string) string {
	parts := strings.Split(s, sep)

	// Repeated separators can only be thousands grouping.
	if len(parts) > 2 {
		for _, p := range parts[1:] {
			if len(p) != 3 {
				return ""
			}
		}
		return strings.Join(parts, "")
	}

	// One separator with a trailing group of exactly three digits is read as
	// thousands grouping, anything else as the decimal point.
	if len(parts[1]) == 3 {
		return parts[0] + parts[1]
	}
	return parts[0] + "." + parts[1]
}

func digitsAndAtMostOneDot(s string) bool {
	dots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return s != "."
}
