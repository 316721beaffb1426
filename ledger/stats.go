package ledger

import (
	"fmt"
	"time"

	"plainledger/journal"
)

// Summary holds whole-journal statistics.
type Summary struct {
	Start, End         time.Time
	Days               int
	Transactions       int
	Postings           int
	UniquePayees       int
	UniqueAccounts     int
	TransactionsPerDay float64
	PostingsPerDay     float64
	SinceLastPost      string
}

// Stats computes summary statistics over a date-sorted transaction list.
// The time since the last post is measured from midnight UTC of the last
// transaction's date to now, rounded up to the next whole hour below 24
// hours and to the next whole day at or above it.
func Stats(transactions []*journal.Transaction, now time.Time) Summary {
	if len(transactions) == 0 {
		return Summary{}
	}

	first := transactions[0].Date
	last := transactions[len(transactions)-1].Date
	days := int(last.Sub(first).Hours() / 24)

	payees := make(map[string]bool)
	accounts := make(map[string]bool)
	postings := 0
	for _, t := range transactions {
		payees[t.Payee] = true
		for _, p := range t.Postings {
			accounts[p.Account] = true
			postings++
		}
	}

	denom := float64(max(days, 1))

	return Summary{
		Start:              first,
		End:                last,
		Days:               days,
		Transactions:       len(transactions),
		Postings:           postings,
		UniquePayees:       len(payees),
		UniqueAccounts:     len(accounts),
		TransactionsPerDay: float64(len(transactions)) / denom,
		PostingsPerDay:     float64(postings) / denom,
		SinceLastPost:      sinceLastPost(last, now),
	}
}

// sinceLastPost formats the elapsed time from midnight UTC of the last
// transaction date. Any non-zero remainder pushes to the next unit: hours
// are ceilinged below 24h, days at or above.
func sinceLastPost(last, now time.Time) string {
	midnight := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC)
	elapsed := now.UTC().Sub(midnight)
	if elapsed < 0 {
		elapsed = 0
	}

	hours := int(elapsed / time.Hour)
	if elapsed%time.Hour > 0 {
		hours++
	}

	if hours >= 24 {
		days := hours / 24
		if hours%24 > 0 {
			days++
		}
		return fmt.Sprintf("%d %s", days, plural(days, "day"))
	}
	return fmt.Sprintf("%d %s", hours, plural(hours, "hour"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
