package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a CSV amount cell. Parenthesized values are negated.
// Everything except digits, '.', ',' and '-' is stripped; an odd number of
// remaining minus signs makes the result negative (so "--5" is positive),
// after which all minus signs are removed and a decimal comma becomes a
// point. A non-numeric remainder rejects the cell; an empty one is zero.
func parseAmount(s string) (decimal.Decimal, bool) {
	v := strings.TrimSpace(s)

	if len(v) >= 2 && strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		v = "-" + v[1:len(v)-1]
	}

	v = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		switch r {
		case '.', ',', '-':
			return r
		}
		return -1
	}, v)

	if v == "" {
		return decimal.Zero, true
	}

	negative := strings.Count(v, "-")%2 == 1
	v = strings.ReplaceAll(v, "-", "")
	v = strings.ReplaceAll(v, ",", ".")

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}
