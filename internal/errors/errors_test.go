package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCaretRendering(t *testing.T) {
	source := "a = 1\nb == oops\nc = 3"
	r := NewReporter(source, "test.src")

	output := r.Report("unexpected token", 2, 5)

	assert.Contains(t, output, "error: unexpected token\n")
	assert.Contains(t, output, "  --> test.src:2:5\n")
	assert.Contains(t, output, "2 | b == oops\n")
	// caret run starts at the 0-based column and underlines the whole token
	assert.Contains(t, output, "  |      ^^^^\n")
}

func TestReportCaretAtLineEnd(t *testing.T) {
	r := NewReporter("ab", "test.src")

	output := r.Report("unterminated string literal", 1, 2)

	// past the last character the pointer still renders a single caret
	assert.Contains(t, output, "1 | ab\n")
	assert.Contains(t, output, "  |   ^\n")
}

func TestReportInvalidLine(t *testing.T) {
	r := NewReporter("x", "test.src")

	output := r.Report("boom", 9, 0)
	assert.Contains(t, output, "invalid line number")
}

func TestReportAll(t *testing.T) {
	source := "x = $\ny = #"
	r := NewReporter(source, "test.src")

	single := r.ReportAll([]LexicalError{
		{Message: "first problem", Line: 1, Column: 4},
	})
	assert.Contains(t, single, "error: first problem")
	assert.NotContains(t, single, "Found")

	output := r.ReportAll([]LexicalError{
		{Message: "first problem", Line: 1, Column: 4},
		{Message: "second problem", Line: 2, Column: 4},
	})
	require.Contains(t, output, "error: first problem")
	require.Contains(t, output, "error: second problem")
	assert.Contains(t, output, "Found 2 errors")
}
