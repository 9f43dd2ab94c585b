package errors

import (
	"fmt"
	"strings"
)

// LexicalError is a positioned lexical failure ready for rendering.
type LexicalError struct {
	Message  string
	Line     int
	Column   int
	Filename string
}

// Reporter renders positioned errors against the original source text.
type Reporter struct {
	source   string
	filename string
	lines    []string
}

// NewReporter creates a reporter for one source file.
func NewReporter(source, filename string) *Reporter {
	return &Reporter{
		source:   source,
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Report formats a Rust-style error message: the offending line with a caret
// run underlining the token at the given column.
func (r *Reporter) Report(message string, line, column int) string {
	if line < 1 || line > len(r.lines) {
		return fmt.Sprintf("error: %s (invalid line number)", message)
	}

	problemLine := r.lines[line-1]

	var result strings.Builder
	result.WriteString(fmt.Sprintf("error: %s\n", message))
	result.WriteString(fmt.Sprintf("  --> %s:%d:%d\n", r.filename, line, column))
	result.WriteString("   |\n")

	lineNumStr := fmt.Sprintf("%d", line)
	padding := strings.Repeat(" ", len(lineNumStr))

	result.WriteString(fmt.Sprintf("%s | %s\n", lineNumStr, problemLine))

	// Columns are 0-based; underline from the column to the end of the token.
	caretStart := column
	if caretStart > len(problemLine) {
		caretStart = len(problemLine)
	}
	caretEnd := caretStart
	for caretEnd < len(problemLine) && !isWhitespace(problemLine[caretEnd]) {
		caretEnd++
	}
	width := caretEnd - caretStart
	if width < 1 {
		width = 1
	}
	pointer := strings.Repeat(" ", caretStart) + strings.Repeat("^", width)

	result.WriteString(fmt.Sprintf("%s | %s\n", padding, pointer))
	result.WriteString("   |\n")

	return result.String()
}

// ReportAll formats multiple errors, with a trailing count when there is
// more than one.
func (r *Reporter) ReportAll(errs []LexicalError) string {
	var result strings.Builder

	for i, err := range errs {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(r.Report(err.Message, err.Line, err.Column))
	}

	if len(errs) > 1 {
		result.WriteString(fmt.Sprintf("\nFound %d errors\n", len(errs)))
	}

	return result.String()
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
