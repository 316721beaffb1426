// Package ledger provides read-only aggregation over a parsed journal:
// per-account balances with hierarchical rollup, calendar-period
// partitioning, a running-balance register, summary statistics, and an
// equity snapshot.
//
// All operations are pure functions of their inputs. The journal is never
// mutated, so independent calls are safe to run concurrently.
package ledger

import (
	"strings"

	"golang.org/x/exp/slices"

	"plainledger/journal"
)

// AccountBalance pairs a leaf account name with its summed balance.
type AccountBalance struct {
	Name    string
	Balance journal.Amount
}

// Balances sums amounts per exact account name across all postings whose
// account contains any of the filter substrings (case-sensitive). An empty
// filter list matches everything. The result has one entry per distinct
// leaf account, sorted lexicographically by name.
func Balances(transactions []*journal.Transaction, filters []string) []AccountBalance {
	sums := make(map[string]journal.Amount)

	for _, t := range transactions {
		for _, p := range t.Postings {
			if p.Amount == nil {
				continue
			}
			if !matchesFilters(p.Account, filters) {
				continue
			}
			sums[p.Account] = sums[p.Account].Plus(*p.Amount)
		}
	}

	result := make([]AccountBalance, 0, len(sums))
	for name, balance := range sums {
		result = append(result, AccountBalance{Name: name, Balance: balance})
	}
	slices.SortFunc(result, func(a, b AccountBalance) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result
}

// matchesFilters reports whether the account name contains any filter
// substring. No filters means match all.
func matchesFilters(account string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if strings.Contains(account, f) {
			return true
		}
	}
	return false
}
