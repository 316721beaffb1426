package journal

import "fmt"

// UnbalancedError reports a transaction whose postings do not sum to zero
// within the acceptance band after filling the elided posting.
type UnbalancedError struct {
	Payee string
	Diff  Amount
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("transaction not balanced: %s (diff: %s)", e.Payee, e.Diff.String())
}

// MultipleElidedError reports a transaction with more than one posting
// missing its amount.
type MultipleElidedError struct {
	Payee string
}

func (e *MultipleElidedError) Error() string {
	return fmt.Sprintf("multiple empty accounts in transaction: %s", e.Payee)
}
