package ledger

import (
	"time"

	"plainledger/journal"
)

// RegisterRow is one posting in the register: the transaction it belongs
// to, the posting itself, and the running total of all matching postings
// seen so far in chronological order.
type RegisterRow struct {
	Date    time.Time
	Payee   string
	Account string
	Amount  journal.Amount
	Running journal.Amount
}

// Register emits one row per posting passing the substring filter, in
// transaction order. The running total accumulates across all matching
// postings; it is not reset per transaction. Rendering to fixed-width
// columns is the report layer's concern.
func Register(transactions []*journal.Transaction, filters []string) []RegisterRow {
	var rows []RegisterRow
	running := journal.Zero()

	for _, t := range transactions {
		for _, p := range t.Postings {
			if p.Amount == nil {
				continue
			}
			if !matchesFilters(p.Account, filters) {
				continue
			}
			running = running.Plus(*p.Amount)
			rows = append(rows, RegisterRow{
				Date:    t.Date,
				Payee:   t.Payee,
				Account: p.Account,
				Amount:  *p.Amount,
				Running: running,
			})
		}
	}
	return rows
}
