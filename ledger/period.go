package ledger

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"plainledger/journal"
)

// Period selects the calendar bucket size for partitioned reports.
type Period int

const (
	Monthly Period = iota
	Quarterly
	SemiYearly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case SemiYearly:
		return "semiyearly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod converts a period name to a Period. It accepts both the
// plain name and its "-ly" form, case-insensitively.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "semiyearly", "semiyear", "halfyearly", "halfyear":
		return SemiYearly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %q", s)
	}
}

// key buckets a date, e.g. "2024-03" / "2024-Q1" / "2024-H1" / "2024".
func (p Period) key(date time.Time) string {
	year, month := date.Year(), int(date.Month())
	switch p {
	case Quarterly:
		return fmt.Sprintf("%04d-Q%d", year, (month+2)/3)
	case SemiYearly:
		half := 1
		if month > 6 {
			half = 2
		}
		return fmt.Sprintf("%04d-H%d", year, half)
	case Yearly:
		return fmt.Sprintf("%04d", year)
	default:
		return fmt.Sprintf("%04d-%02d", year, month)
	}
}

// Range is one calendar bucket of transactions. Start and End are the
// earliest and latest transaction dates actually present in the bucket,
// not the calendar boundaries.
type Range struct {
	Key          string
	Start, End   time.Time
	Transactions []*journal.Transaction
}

// TransactionsByPeriod partitions transactions into calendar buckets.
// Every transaction lands in exactly one bucket; buckets are returned in
// chronological order of their start date.
func TransactionsByPeriod(transactions []*journal.Transaction, period Period) []*Range {
	buckets := make(map[string][]*journal.Transaction)
	for _, t := range transactions {
		key := period.key(t.Date)
		buckets[key] = append(buckets[key], t)
	}

	ranges := make([]*Range, 0, len(buckets))
	for key, txns := range buckets {
		journal.SortByDate(txns)
		ranges = append(ranges, &Range{
			Key:          key,
			Start:        txns[0].Date,
			End:          txns[len(txns)-1].Date,
			Transactions: txns,
		})
	}

	slices.SortFunc(ranges, func(a, b *Range) int {
		return a.Start.Compare(b.Start)
	})
	return ranges
}

// PeriodBalances is the self-contained balance set of one bucket. There is
// no carry-forward between buckets; each period is a partition, not a
// cumulative total.
type PeriodBalances struct {
	Key        string
	Start, End time.Time
	Balances   []AccountBalance
}

// BalancesByPeriod partitions transactions and computes Balances
// independently within each bucket.
func BalancesByPeriod(transactions []*journal.Transaction, period Period, filters []string) []PeriodBalances {
	ranges := TransactionsByPeriod(transactions, period)
	results := make([]PeriodBalances, 0, len(ranges))
	for _, r := range ranges {
		results = append(results, PeriodBalances{
			Key:      r.Key,
			Start:    r.Start,
			End:      r.End,
			Balances: Balances(r.Transactions, filters),
		})
	}
	return results
}
