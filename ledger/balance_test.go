package ledger

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

const sampleJournal = "2024/01/05 Paycheck\n" +
	"    Assets:Bank:Checking    1000.00\n" +
	"    Income:Salary\n" +
	"\n" +
	"2024/01/10 Grocery Store\n" +
	"    Expenses:Food    50.00\n" +
	"    Assets:Bank:Checking\n" +
	"\n" +
	"2024/02/14 Restaurant\n" +
	"    Expenses:Food    30.00\n" +
	"    Assets:Bank:Savings\n"

func TestBalances(t *testing.T) {
	transactions := parse(t, sampleJournal)

	t.Run("sums per account", func(t *testing.T) {
		balances := Balances(transactions, nil)
		assert.Equal(t, 4, len(balances))

		byName := make(map[string]string)
		for _, ab := range balances {
			byName[ab.Name] = ab.Balance.String()
		}
		assert.Equal(t, "950.00", byName["Assets:Bank:Checking"])
		assert.Equal(t, "-30.00", byName["Assets:Bank:Savings"])
		assert.Equal(t, "80.00", byName["Expenses:Food"])
		assert.Equal(t, "-1000.00", byName["Income:Salary"])
	})

	t.Run("sorted by name", func(t *testing.T) {
		balances := Balances(transactions, nil)
		for i := 1; i < len(balances); i++ {
			assert.True(t, balances[i-1].Name < balances[i].Name)
		}
	})

	t.Run("filters are substrings", func(t *testing.T) {
		balances := Balances(transactions, []string{"Food"})
		assert.Equal(t, 1, len(balances))
		assert.Equal(t, "Expenses:Food", balances[0].Name)
	})

	t.Run("multiple filters union", func(t *testing.T) {
		balances := Balances(transactions, []string{"Food", "Salary"})
		assert.Equal(t, 2, len(balances))
	})

	t.Run("filters are case-sensitive", func(t *testing.T) {
		balances := Balances(transactions, []string{"food"})
		assert.Equal(t, 0, len(balances))
	})
}

func TestNewBalanceTree(t *testing.T) {
	transactions := parse(t, sampleJournal)

	t.Run("prefix rollup", func(t *testing.T) {
		tree := NewBalanceTree(Balances(transactions, nil), -1, false)

		byName := make(map[string]string)
		for _, row := range tree.Flatten() {
			byName[row.Name] = row.Balance.String()
		}

		assert.Equal(t, "920.00", byName["Assets"])
		assert.Equal(t, "920.00", byName["Assets:Bank"])
		assert.Equal(t, "950.00", byName["Assets:Bank:Checking"])
		assert.Equal(t, "80.00", byName["Expenses"])
		assert.Equal(t, "80.00", byName["Expenses:Food"])
	})

	t.Run("total is the unconsolidated sum", func(t *testing.T) {
		tree := NewBalanceTree(Balances(transactions, nil), -1, false)
		assert.True(t, tree.Total.IsZero())

		tree = NewBalanceTree(Balances(transactions, []string{"Expenses"}), -1, false)
		assert.Equal(t, "80.00", tree.Total.String())
	})

	t.Run("depth folding", func(t *testing.T) {
		tree := NewBalanceTree(Balances(transactions, nil), 2, false)

		names := make(map[string]bool)
		for _, row := range tree.Flatten() {
			names[row.Name] = true
		}
		assert.True(t, names["Assets:Bank"])
		assert.False(t, names["Assets:Bank:Checking"])
		assert.False(t, names["Assets:Bank:Savings"])
	})

	t.Run("pre-order with parents before children", func(t *testing.T) {
		tree := NewBalanceTree(Balances(transactions, nil), -1, false)
		rows := tree.Flatten()

		index := make(map[string]int)
		for i, row := range rows {
			index[row.Name] = i
		}
		assert.True(t, index["Assets"] < index["Assets:Bank"])
		assert.True(t, index["Assets:Bank"] < index["Assets:Bank:Checking"])
		assert.True(t, index["Assets:Bank:Checking"] < index["Assets:Bank:Savings"])
		assert.True(t, index["Assets:Bank:Savings"] < index["Expenses"])
	})

	t.Run("zero balances dropped unless includeEmpty", func(t *testing.T) {
		zeroed := parse(t, "2024/01/01 Wash\n"+
			"    Assets:Cash    10.00\n"+
			"    Expenses:Misc\n"+
			"\n"+
			"2024/01/02 Refund\n"+
			"    Assets:Cash    -10.00\n"+
			"    Expenses:Misc\n")

		tree := NewBalanceTree(Balances(zeroed, nil), -1, false)
		assert.Equal(t, 0, len(tree.Roots))

		tree = NewBalanceTree(Balances(zeroed, nil), -1, true)
		assert.True(t, len(tree.Roots) > 0)
	})

	t.Run("children are attached in order", func(t *testing.T) {
		tree := NewBalanceTree(Balances(transactions, nil), -1, false)

		var assets *BalanceNode
		for _, root := range tree.Roots {
			if root.Name == "Assets" {
				assets = root
			}
		}
		assert.NotZero(t, assets)
		assert.Equal(t, 1, len(assets.Children))
		assert.Equal(t, "Assets:Bank", assets.Children[0].Name)
		assert.Equal(t, 2, len(assets.Children[0].Children))
	})
}

func TestComparePaths(t *testing.T) {
	assert.True(t, comparePaths("Assets", "Assets:Bank") < 0)
	assert.True(t, comparePaths("Assets:Bank", "Assets") > 0)
	assert.True(t, comparePaths("Assets:Bank", "Expenses") < 0)
	assert.Equal(t, 0, comparePaths("Assets:Bank", "Assets:Bank"))
}
