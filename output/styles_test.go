package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestStylesDegradeToPlainText(t *testing.T) {
	// A bytes.Buffer is not a terminal, so no escape sequences may leak
	// into the rendered text.
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	for name, render := range map[string]func(string) string{
		"Keyword": styles.Keyword,
		"Dim":     styles.Dim,
		"Warning": styles.Warning,
	} {
		t.Run(name, func(t *testing.T) {
			got := render("125ms")
			assert.True(t, strings.Contains(got, "125ms"))
			assert.False(t, strings.Contains(got, "\x1b["))
		})
	}
}
