// Package importer turns bank-export CSV rows into journal transactions.
//
// The pipeline resolves a destination account from a hint, detects columns
// from the CSV header, trains a payee classifier on the existing journal,
// and emits one balanced posting pair per accepted row. Bad rows are
// skipped; structural problems (missing columns, unresolvable account)
// abort the import.
package importer

import (
	"encoding/csv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"plainledger/classifier"
	"plainledger/journal"
)

// Options configures an import run.
type Options struct {
	// ClassSubstring selects the account set used as classifier classes.
	ClassSubstring string

	// DateFormat is the Go reference layout tried first for row dates.
	DateFormat string

	// Delimiter is the CSV field separator.
	Delimiter rune

	// Scale multiplies every imported amount.
	Scale float64

	// Negate flips the sign of the amount column.
	Negate bool

	// AllowMatching disables duplicate suppression against the journal.
	AllowMatching bool
}

// DefaultOptions returns the standard import configuration.
func DefaultOptions() Options {
	return Options{
		ClassSubstring: "Expenses",
		DateFormat:     "01/02/2006",
		Delimiter:      ',',
		Scale:          1,
	}
}

func (o Options) normalized() Options {
	if o.ClassSubstring == "" {
		o.ClassSubstring = "Expenses"
	}
	if o.DateFormat == "" {
		o.DateFormat = "01/02/2006"
	}
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Scale == 0 {
		o.Scale = 1
	}
	return o
}

// columns maps detected header categories to field indexes; -1 means the
// column is absent.
type columns struct {
	date, payee, amount, note, uuid, buyer int
}

// Import converts CSV text into generated transactions, classifying each
// row's payee against the existing journal. The returned transactions are
// emission units for the caller to render and append; they are not merged
// into the journal here.
func Import(transactions []*journal.Transaction, csvData string, accountHint string, opts Options) ([]*journal.Transaction, error) {
	opts = opts.normalized()

	destination, err := resolveAccount(transactions, accountHint)
	if err != nil {
		return nil, err
	}

	model := classifier.Train(transactions, opts.ClassSubstring)

	reader := csv.NewReader(strings.NewReader(csvData))
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &MissingColumnsError{}
	}

	cols, err := detectColumns(records[0])
	if err != nil {
		return nil, err
	}

	scale := decimal.NewFromFloat(opts.Scale)
	var generated []*journal.Transaction

	for _, record := range records[1:] {
		date, err := parseDate(cell(record, cols.date), opts.DateFormat)
		if err != nil {
			continue
		}

		payee := cell(record, cols.payee)
		if !opts.AllowMatching && hasExisting(transactions, date, firstWord(payee)) {
			continue
		}

		account := model.Classify(payee)

		amount, ok := parseAmount(cell(record, cols.amount))
		if !ok {
			continue
		}
		amount = amount.Mul(scale)
		if opts.Negate {
			amount = amount.Neg()
		}

		csvAmount := journal.NewAmount(amount.Neg())
		expenseAmount := csvAmount.Negated()

		var comments []string
		if note := cell(record, cols.note); cols.note >= 0 && note != "" {
			comments = append(comments, ";"+note)
		}
		if uuid := cell(record, cols.uuid); cols.uuid >= 0 && uuid != "" {
			comments = append(comments, "; UUID: "+uuid)
		}
		if buyer := cell(record, cols.buyer); cols.buyer >= 0 && buyer != "" {
			comments = append(comments, "; Buyer: "+buyer)
		}

		generated = append(generated, &journal.Transaction{
			Date:     date,
			Payee:    payee,
			Comments: comments,
			Postings: []*journal.Posting{
				{Account: destination, Amount: &csvAmount},
				{Account: account, Amount: &expenseAmount},
			},
		})
	}

	return generated, nil
}

// Render produces the journal text for generated transactions: comments,
// header, postings, one blank line between transactions and two after the
// final one, the format's end-of-file idiom.
func Render(generated []*journal.Transaction) string {
	var b strings.Builder
	for _, t := range generated {
		for _, c := range t.Comments {
			b.WriteString(c)
			b.WriteString("\n")
		}
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// resolveAccount finds the destination account by case-insensitive
// substring. When several accounts match, the last one in discovery order
// wins.
func resolveAccount(transactions []*journal.Transaction, hint string) (string, error) {
	needle := strings.ToLower(hint)
	var match string
	for _, name := range journal.Accounts(transactions) {
		if strings.Contains(strings.ToLower(name), needle) {
			match = name
		}
	}
	if match == "" {
		return "", &NoMatchingAccountError{Hint: hint}
	}
	return match, nil
}

// detectColumns classifies each header cell by substring into a column
// role. A later header cell of the same role overrides an earlier one.
func detectColumns(header []string) (columns, error) {
	cols := columns{date: -1, payee: -1, amount: -1, note: -1, uuid: -1, buyer: -1}

	for i, field := range header {
		name := strings.ToLower(strings.TrimSpace(field))
		switch {
		case strings.Contains(name, "date"):
			cols.date = i
		case strings.Contains(name, "description"), strings.Contains(name, "payee"):
			cols.payee = i
		case strings.Contains(name, "amount"), strings.Contains(name, "expense"):
			cols.amount = i
		case strings.Contains(name, "note"):
			cols.note = i
		case strings.Contains(name, "uuid"):
			cols.uuid = i
		case strings.Contains(name, "buyer"):
			cols.buyer = i
		}
	}

	if cols.date < 0 || cols.payee < 0 || cols.amount < 0 {
		var missing []string
		if cols.date < 0 {
			missing = append(missing, "date")
		}
		if cols.payee < 0 {
			missing = append(missing, "payee")
		}
		if cols.amount < 0 {
			missing = append(missing, "amount")
		}
		return cols, &MissingColumnsError{Missing: missing}
	}
	return cols, nil
}

// cell returns the trimmed field at index, or "" when the record is short
// or the column absent.
func cell(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// hasExisting reports whether the journal already has a transaction on the
// same calendar date whose payee starts with the row's first payee word.
func hasExisting(transactions []*journal.Transaction, date time.Time, word string) bool {
	day := date.Format("2006-01-02")
	for _, t := range transactions {
		if t.Date.Format("2006-01-02") == day && strings.HasPrefix(t.Payee, word) {
			return true
		}
	}
	return false
}
