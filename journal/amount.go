package journal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places used when rendering
// amounts as journal text.
const DisplayPrecision = 2

// epsilon is the absolute tolerance used for all monetary comparisons.
// Exact equality is never used on amounts.
var epsilon = decimal.New(1, -6)

// Amount is an immutable monetary value. All arithmetic returns new values.
type Amount struct {
	d decimal.Decimal
}

// Zero returns the zero amount.
func Zero() Amount {
	return Amount{}
}

// NewAmount creates an Amount from a decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// ParseAmount converts a posting value token to an Amount. The input is
// normalized before parsing:
//   - surrounding whitespace is trimmed
//   - a value fully wrapped in parentheses is unwrapped and negated
//   - currency glyphs ($, €, £, ¥), inner whitespace and thousands
//     separators are stripped
//
// This is the only value normalizer; the journal parser goes through it
// for every posting amount.
func ParseAmount(s string) (Amount, error) {
	v := strings.TrimSpace(s)

	negative := false
	if len(v) >= 2 && strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		v = v[1 : len(v)-1]
		negative = true
	}

	v = stripCurrency(v)

	d, err := decimal.NewFromString(v)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if negative {
		d = d.Neg()
	}
	return Amount{d: d}, nil
}

// MustParseAmount is ParseAmount that panics on error. Use only in tests or
// with known-good input.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func stripCurrency(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', '¥', ' ', '\t', ',':
			return -1
		}
		return r
	}, s)
}

// Plus returns the sum of a and b.
func (a Amount) Plus(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Negated returns the additive inverse of a.
func (a Amount) Negated() Amount {
	return Amount{d: a.d.Neg()}
}

// IsZero reports whether a is within epsilon of zero.
func (a Amount) IsZero() bool {
	return a.d.Abs().LessThan(epsilon)
}

// Equal reports whether a and b differ by less than epsilon.
func (a Amount) Equal(b Amount) bool {
	return a.d.Sub(b.d).Abs().LessThan(epsilon)
}

// Sign returns 1 if a is positive, -1 if negative, 0 when within epsilon
// of zero.
func (a Amount) Sign() int {
	switch {
	case a.d.GreaterThan(epsilon):
		return 1
	case a.d.LessThan(epsilon.Neg()):
		return -1
	}
	return 0
}

// Abs returns the absolute value of a.
func (a Amount) Abs() Amount {
	return Amount{d: a.d.Abs()}
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// String renders the amount at display precision, e.g. "-1234.56".
func (a Amount) String() string {
	return a.d.StringFixed(DisplayPrecision)
}
