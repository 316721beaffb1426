package ledger

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestRegister(t *testing.T) {
	transactions := parse(t, sampleJournal)

	t.Run("one row per posting with running total", func(t *testing.T) {
		rows := Register(transactions, nil)
		assert.Equal(t, 6, len(rows))

		assert.Equal(t, "Paycheck", rows[0].Payee)
		assert.Equal(t, "Assets:Bank:Checking", rows[0].Account)
		assert.Equal(t, "1000.00", rows[0].Amount.String())
		assert.Equal(t, "1000.00", rows[0].Running.String())

		assert.Equal(t, "Income:Salary", rows[1].Account)
		assert.Equal(t, "0.00", rows[1].Running.String())

		// Running total is cumulative across transactions.
		assert.Equal(t, "50.00", rows[2].Running.String())
		assert.Equal(t, "0.00", rows[3].Running.String())
		assert.Equal(t, "0.00", rows[5].Running.String())
	})

	t.Run("filtered register accumulates only matches", func(t *testing.T) {
		rows := Register(transactions, []string{"Expenses"})
		assert.Equal(t, 2, len(rows))
		assert.Equal(t, "50.00", rows[0].Running.String())
		assert.Equal(t, "80.00", rows[1].Running.String())
	})

	t.Run("empty journal", func(t *testing.T) {
		rows := Register(nil, nil)
		assert.Equal(t, 0, len(rows))
	})
}
