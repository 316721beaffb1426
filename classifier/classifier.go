// Package classifier predicts a destination account for payee text using
// a Naive Bayes model trained on the payees of an existing journal.
//
// Every distinct account containing a search substring becomes one class.
// Each transaction's payee tokens are learned once per posting landing in
// a class, so a transaction posting to two classes trains both
// independently.
package classifier

import (
	"strings"

	"github.com/jbrukh/bayesian"

	"plainledger/journal"
)

// Unknown is returned when classification is impossible: no discovered
// classes, or input that tokenizes to nothing.
const Unknown = "unknown:unknown"

// Model is a trained classifier. It is an immutable value: train once per
// import run and discard. It is not designed for incremental updates.
type Model struct {
	classes []bayesian.Class
	cl      *bayesian.Classifier
}

// Train discovers classes and trains the model from a journal. Accounts
// containing classSubstring (case-insensitive) become classes, in order of
// first appearance; that order is the tie-break for equal scores.
func Train(transactions []*journal.Transaction, classSubstring string) *Model {
	needle := strings.ToLower(classSubstring)

	var classes []bayesian.Class
	seen := make(map[string]bool)
	for _, t := range transactions {
		for _, p := range t.Postings {
			if seen[p.Account] {
				continue
			}
			if strings.Contains(strings.ToLower(p.Account), needle) {
				seen[p.Account] = true
				classes = append(classes, bayesian.Class(p.Account))
			}
		}
	}

	m := &Model{classes: classes}
	if len(classes) < 2 {
		// bayesian.NewClassifier requires at least two classes. With one
		// class the argmax is trivial; with none we only ever answer
		// Unknown. No scoring needed either way.
		return m
	}

	m.cl = bayesian.NewClassifier(classes...)
	for _, t := range transactions {
		tokens := Tokenize(t.Payee)
		for _, p := range t.Postings {
			if seen[p.Account] {
				m.cl.Learn(tokens, bayesian.Class(p.Account))
			}
		}
	}
	return m
}

// Classify returns the best-scoring class for the payee text, or Unknown.
// Scoring is ln(prior) plus the summed ln word likelihoods with add-one
// smoothing; ties keep the earliest discovered class.
func (m *Model) Classify(payee string) string {
	tokens := Tokenize(payee)
	if len(tokens) == 0 || len(m.classes) == 0 {
		return Unknown
	}
	if m.cl == nil {
		return string(m.classes[0])
	}

	// LogScores also reports whether the winner was strict; the argmax
	// index alone decides the class.
	_, inx, _ := m.cl.LogScores(tokens)
	return string(m.classes[inx])
}

// Classes returns the discovered class names in discovery order.
func (m *Model) Classes() []string {
	names := make([]string, len(m.classes))
	for i, c := range m.classes {
		names[i] = string(c)
	}
	return names
}

// Tokenize lowercases text and splits it on runs of whitespace, dropping
// empty tokens. The same tokenizer is used for training and
// classification input.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(text)))
}
