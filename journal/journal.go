// Package journal implements the plain-text journal format: monetary
// amounts, postings, transactions, and the line-oriented parser that turns
// raw journal text into an ordered list of balanced transactions.
//
// A journal is a sequence of transactions separated by blank lines. Each
// transaction starts with a "YYYY/MM/DD payee" header line followed by
// indented posting lines of the form "Account:Name    123.45". At most one
// posting per transaction may omit its amount; it is filled with the
// negation of the sum of the others when the transaction is finalized.
//
// Example usage:
//
//	transactions, err := journal.Parse(text)
//	if err != nil {
//	    // unbalanced or doubly-elided transaction
//	}
package journal

import (
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// DateFormat is the canonical date layout for journal output.
const DateFormat = "2006/01/02"

// Posting is one account/amount line within a transaction. Amount is nil
// for an elided posting whose value has not been inferred yet.
type Posting struct {
	Account string
	Amount  *Amount
}

// String renders the posting as journal text without indentation.
func (p *Posting) String() string {
	if p.Amount == nil {
		return p.Account
	}
	return p.Account + "    " + p.Amount.String()
}

// Transaction is a dated payee with its postings and any comment lines
// that preceded it in the source.
type Transaction struct {
	Date     time.Time
	Payee    string
	Postings []*Posting
	Comments []string
}

// String renders the transaction in canonical journal form, without its
// comments and without a trailing blank line.
func (t *Transaction) String() string {
	var b strings.Builder
	b.WriteString(t.Date.Format(DateFormat))
	b.WriteString(" ")
	b.WriteString(t.Payee)
	b.WriteString("\n")
	for _, p := range t.Postings {
		b.WriteString("    ")
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	return b.String()
}

// SortByDate stable-sorts transactions ascending by date. Transactions on
// the same date keep their original order.
func SortByDate(transactions []*Transaction) {
	slices.SortStableFunc(transactions, func(a, b *Transaction) int {
		return a.Date.Compare(b.Date)
	})
}

// Accounts returns the distinct account names across all postings, in
// order of first appearance.
func Accounts(transactions []*Transaction) []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range transactions {
		for _, p := range t.Postings {
			if !seen[p.Account] {
				seen[p.Account] = true
				names = append(names, p.Account)
			}
		}
	}
	return names
}
