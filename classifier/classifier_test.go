package classifier

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"plainledger/journal"
)

func parse(t *testing.T, input string) []*journal.Transaction {
	t.Helper()
	transactions, err := journal.Parse(input)
	assert.NoError(t, err)
	return transactions
}

const trainingJournal = "2024/01/05 Starbucks Coffee\n" +
	"    Expenses:Food    4.50\n" +
	"    Assets:Cash\n" +
	"\n" +
	"2024/01/06 Shell Gasoline\n" +
	"    Expenses:Auto    40.00\n" +
	"    Assets:Cash\n" +
	"\n" +
	"2024/01/07 Starbucks Coffee\n" +
	"    Expenses:Food    4.50\n" +
	"    Assets:Cash\n"

func TestTrain(t *testing.T) {
	transactions := parse(t, trainingJournal)

	t.Run("classes in discovery order", func(t *testing.T) {
		m := Train(transactions, "Expenses")
		assert.Equal(t, []string{"Expenses:Food", "Expenses:Auto"}, m.Classes())
	})

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		m := Train(transactions, "expenses")
		assert.Equal(t, 2, len(m.Classes()))
	})

	t.Run("no matching accounts", func(t *testing.T) {
		m := Train(transactions, "Liabilities")
		assert.Equal(t, 0, len(m.Classes()))
	})
}

func TestClassify(t *testing.T) {
	transactions := parse(t, trainingJournal)

	t.Run("learned payees classify to their account", func(t *testing.T) {
		m := Train(transactions, "Expenses")
		assert.Equal(t, "Expenses:Food", m.Classify("Starbucks Coffee"))
		assert.Equal(t, "Expenses:Auto", m.Classify("Shell Gasoline"))
	})

	t.Run("partial payee still matches", func(t *testing.T) {
		m := Train(transactions, "Expenses")
		assert.Equal(t, "Expenses:Food", m.Classify("starbucks downtown"))
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		m := Train(transactions, "Expenses")
		want := m.Classify("Shell Gasoline")
		for i := 0; i < 10; i++ {
			assert.Equal(t, want, Train(transactions, "Expenses").Classify("Shell Gasoline"))
		}
	})

	t.Run("ties keep the first discovered class", func(t *testing.T) {
		// Both classes learn identical tokens with equal priors, so every
		// input scores the same for both.
		tied := parse(t, "2024/01/05 Same Payee\n"+
			"    Expenses:Food    4.50\n"+
			"    Assets:Cash\n"+
			"\n"+
			"2024/01/06 Same Payee\n"+
			"    Expenses:Auto    4.50\n"+
			"    Assets:Cash\n")
		m := Train(tied, "Expenses")
		assert.Equal(t, []string{"Expenses:Food", "Expenses:Auto"}, m.Classes())
		assert.Equal(t, "Expenses:Food", m.Classify("Same Payee"))
	})

	t.Run("unknown for empty payee", func(t *testing.T) {
		m := Train(transactions, "Expenses")
		assert.Equal(t, Unknown, m.Classify(""))
		assert.Equal(t, Unknown, m.Classify("   "))
	})

	t.Run("unknown without classes", func(t *testing.T) {
		m := Train(transactions, "Liabilities")
		assert.Equal(t, Unknown, m.Classify("Starbucks Coffee"))
	})

	t.Run("single class wins without scoring", func(t *testing.T) {
		single := parse(t, "2024/01/05 Starbucks Coffee\n"+
			"    Expenses:Food    4.50\n"+
			"    Assets:Cash\n")
		m := Train(single, "Expenses")
		assert.Equal(t, "Expenses:Food", m.Classify("anything at all"))
	})
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"starbucks", "coffee"}, Tokenize("  Starbucks   COFFEE "))
	assert.Equal(t, 0, len(Tokenize("")))
	assert.Equal(t, 0, len(Tokenize("   \t ")))
}
