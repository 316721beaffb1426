package ledger

import (
	"plainledger/journal"
)

// Equity accumulates balances over the given (already filtered, date
// sorted) transactions and returns a single "Opening Balances" snapshot
// transaction: one posting per non-zero account, sorted by name, dated at
// the last contributing transaction. It returns nil when there are no
// transactions or every balance is epsilon-zero.
func Equity(transactions []*journal.Transaction) *journal.Transaction {
	if len(transactions) == 0 {
		return nil
	}

	var postings []*journal.Posting
	for _, ab := range Balances(transactions, nil) {
		if ab.Balance.IsZero() {
			continue
		}
		balance := ab.Balance
		postings = append(postings, &journal.Posting{Account: ab.Name, Amount: &balance})
	}
	if len(postings) == 0 {
		return nil
	}

	return &journal.Transaction{
		Date:     transactions[len(transactions)-1].Date,
		Payee:    "Opening Balances",
		Postings: postings,
	}
}
