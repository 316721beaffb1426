package ledger

import (
	"strings"
	"time"

	"plainledger/journal"
)

// FilterByDate keeps transactions dated within [start, end], inclusive.
// A zero start or end leaves that side of the range open.
func FilterByDate(transactions []*journal.Transaction, start, end time.Time) []*journal.Transaction {
	var filtered []*journal.Transaction
	for _, t := range transactions {
		if !start.IsZero() && t.Date.Before(start) {
			continue
		}
		if !end.IsZero() && t.Date.After(end) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// FilterByPayee keeps transactions whose payee contains the given
// substring, case-insensitively. An empty substring keeps everything.
func FilterByPayee(transactions []*journal.Transaction, payee string) []*journal.Transaction {
	if payee == "" {
		return transactions
	}
	needle := strings.ToLower(payee)
	var filtered []*journal.Transaction
	for _, t := range transactions {
		if strings.Contains(strings.ToLower(t.Payee), needle) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
