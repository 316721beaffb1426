package ledger

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"plainledger/journal"
)

func TestFilterByDate(t *testing.T) {
	transactions := parse(t, sampleJournal)

	t.Run("inclusive bounds", func(t *testing.T) {
		start := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
		filtered := FilterByDate(transactions, start, end)
		assert.Equal(t, 2, len(filtered))
	})

	t.Run("open-ended begin", func(t *testing.T) {
		start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
		filtered := FilterByDate(transactions, start, time.Time{})
		assert.Equal(t, 1, len(filtered))
		assert.Equal(t, "Restaurant", filtered[0].Payee)
	})

	t.Run("open-ended end", func(t *testing.T) {
		end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
		filtered := FilterByDate(transactions, time.Time{}, end)
		assert.Equal(t, 2, len(filtered))
	})

	t.Run("empty range", func(t *testing.T) {
		start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		filtered := FilterByDate(transactions, start, time.Time{})
		assert.Equal(t, 0, len(filtered))
	})
}

func TestFilterByPayee(t *testing.T) {
	transactions := parse(t, sampleJournal)

	t.Run("case-insensitive substring", func(t *testing.T) {
		filtered := FilterByPayee(transactions, "grocery")
		assert.Equal(t, 1, len(filtered))
		assert.Equal(t, "Grocery Store", filtered[0].Payee)
	})

	t.Run("empty keeps everything", func(t *testing.T) {
		filtered := FilterByPayee(transactions, "")
		assert.Equal(t, len(transactions), len(filtered))
	})

	t.Run("no match", func(t *testing.T) {
		filtered := FilterByPayee(transactions, "landlord")
		assert.Equal(t, 0, len(filtered))
	})
}

func TestEquity(t *testing.T) {
	transactions := parse(t, sampleJournal)

	t.Run("snapshot of non-zero balances", func(t *testing.T) {
		snapshot := Equity(transactions)
		assert.NotZero(t, snapshot)
		assert.Equal(t, "Opening Balances", snapshot.Payee)
		assert.Equal(t, transactions[len(transactions)-1].Date, snapshot.Date)
		assert.Equal(t, 4, len(snapshot.Postings))

		total := journal.Zero()
		for _, p := range snapshot.Postings {
			total = total.Plus(*p.Amount)
		}
		assert.True(t, total.IsZero())
	})

	t.Run("nil for empty journal", func(t *testing.T) {
		assert.Zero(t, Equity(nil))
	})

	t.Run("nil when everything cancels", func(t *testing.T) {
		cancels := parse(t, "2024/01/01 Wash\n"+
			"    Assets:Cash    10.00\n"+
			"    Expenses:Misc\n"+
			"\n"+
			"2024/01/02 Refund\n"+
			"    Assets:Cash    -10.00\n"+
			"    Expenses:Misc\n")
		assert.Zero(t, Equity(cancels))
	})
}
