package importer

import (
	"fmt"
	"strings"
)

// NoMatchingAccountError reports that no journal account contains the
// destination hint.
type NoMatchingAccountError struct {
	Hint string
}

func (e *NoMatchingAccountError) Error() string {
	return fmt.Sprintf("unable to find account matching %q", e.Hint)
}

// MissingColumnsError reports that the CSV header lacks one or more of
// the mandatory date, payee and amount columns.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	if len(e.Missing) == 0 {
		return "unable to find columns required from header field names"
	}
	return fmt.Sprintf("unable to find columns required from header field names: %s",
		strings.Join(e.Missing, ", "))
}
