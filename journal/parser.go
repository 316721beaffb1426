package journal

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// headerPattern recognizes a transaction header: a date with /, - or .
	// separators followed by whitespace and a payee.
	headerPattern = regexp.MustCompile(`^(\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2})\s+(.+)$`)

	// postingPattern splits a posting line into an account name and a value
	// token separated by two or more spaces.
	postingPattern = regexp.MustCompile(`^(.*?)\s{2,}(.+)$`)

	dateSeparators = strings.NewReplacer(".", "/", "-", "/")
)

// balanceTolerance is the acceptance band for the per-transaction zero-sum
// check. It is one display-precision unit, deliberately looser than the
// comparison epsilon, to absorb rounding in imported data.
var balanceTolerance = decimal.New(1, -DisplayPrecision)

// Parse converts raw journal text into transactions, sorted ascending by
// date. It is a pure function of its input and performs no I/O.
//
// Malformed header lines (unparsable dates) skip only the transaction they
// would have started. An unbalanced transaction or one with more than one
// elided posting aborts the whole parse: garbage lines are tolerated,
// broken bookkeeping never is.
func Parse(text string) ([]*Transaction, error) {
	var (
		transactions []*Transaction
		current      *Transaction
		comments     []string
	)

	finish := func() error {
		if err := finalize(current); err != nil {
			return err
		}
		current.Comments = comments
		transactions = append(transactions, current)
		current = nil
		comments = nil
		return nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if current != nil {
				if err := finish(); err != nil {
					return nil, err
				}
			}
			continue
		}

		if strings.HasPrefix(trimmed, ";") {
			comments = append(comments, line)
			continue
		}

		if m := headerPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				if err := finish(); err != nil {
					return nil, err
				}
			}
			date, err := parseDate(m[1])
			if err != nil {
				// Skip the malformed transaction; posting lines that
				// follow are ignored until the next header.
				continue
			}
			current = &Transaction{Date: date, Payee: m[2]}
			continue
		}

		if current != nil && (strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")) {
			current.Postings = append(current.Postings, parsePostingLine(trimmed))
		}
	}

	if current != nil {
		if err := finish(); err != nil {
			return nil, err
		}
	}

	SortByDate(transactions)
	return transactions, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006/1/2", dateSeparators.Replace(s))
}

// parsePostingLine splits an account name from a trailing value token. The
// preferred separator is a run of two or more spaces; failing that, the
// last whitespace-separated token is tried as the value. A line whose
// trailing token is not a valid value is an account name with no amount.
func parsePostingLine(line string) *Posting {
	if m := postingPattern.FindStringSubmatch(line); m != nil {
		if amount, ok := parsePostingValue(strings.TrimSpace(m[2])); ok {
			return &Posting{Account: strings.TrimSpace(m[1]), Amount: &amount}
		}
	}

	parts := strings.Fields(line)
	if len(parts) >= 2 {
		if amount, ok := parsePostingValue(parts[len(parts)-1]); ok {
			return &Posting{
				Account: strings.Join(parts[:len(parts)-1], " "),
				Amount:  &amount,
			}
		}
	}

	return &Posting{Account: line}
}

// parsePostingValue parses a posting's value token through ParseAmount,
// reporting failure as a bool so the caller can fall back to treating the
// token as part of the account name.
func parsePostingValue(s string) (Amount, bool) {
	if strings.TrimSpace(s) == "" {
		return Amount{}, false
	}
	a, err := ParseAmount(s)
	if err != nil {
		return Amount{}, false
	}
	return a, true
}

// finalize applies the balance invariants to a completed transaction: at
// most one elided posting, which is filled with the negation of the sum of
// the others, and a total within the acceptance band of zero.
func finalize(t *Transaction) error {
	total := Zero()
	elided := -1

	for i, p := range t.Postings {
		if p.Amount == nil {
			if elided != -1 {
				return &MultipleElidedError{Payee: t.Payee}
			}
			elided = i
			continue
		}
		total = total.Plus(*p.Amount)
	}

	if elided != -1 {
		filled := total.Negated()
		t.Postings[elided].Amount = &filled
	}

	check := Zero()
	for _, p := range t.Postings {
		if p.Amount != nil {
			check = check.Plus(*p.Amount)
		}
	}

	if !check.IsZero() && check.Decimal().Abs().GreaterThan(balanceTolerance) {
		return &UnbalancedError{Payee: t.Payee, Diff: check}
	}
	return nil
}
