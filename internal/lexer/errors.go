package lexer

import (
	"fmt"

	"github.com/tomdoesdev/lexkit/internal/token"
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrDuplicateExponent is returned when a numeric literal carries a second
	// e/E exponent marker.
	ErrDuplicateExponent = errors.NewKind("duplicate exponent marker in numeric literal at %s")
	// ErrMalformedExponent is returned when an exponent marker is not followed
	// by an optional sign and at least one digit.
	ErrMalformedExponent = errors.NewKind("malformed exponent in numeric literal at %s")
	// ErrUnterminatedString is returned when input ends before a string
	// literal's closing quote.
	ErrUnterminatedString = errors.NewKind("unterminated string literal at %s")
	// ErrMalformedUnicodeEscape is returned when a \x or \X escape is not
	// followed by at least one hex digit.
	ErrMalformedUnicodeEscape = errors.NewKind("malformed unicode escape at %s")
	// ErrUnterminatedBlockComment is returned when input ends inside /* ... */.
	ErrUnterminatedBlockComment = errors.NewKind("unterminated block comment at %s")
	// ErrInvalidToken is returned when the lexer hits a character that starts
	// no known token.
	ErrInvalidToken = errors.NewKind("invalid token %q at %s")
)

// Code is the stable symbolic name of a lexical error.
type Code string

const (
	CodeDuplicateExponent        Code = "duplicate_exponent"
	CodeMalformedExponent        Code = "malformed_exponent"
	CodeUnterminatedString       Code = "unterminated_string"
	CodeMalformedUnicodeEscape   Code = "malformed_unicode_escape"
	CodeUnterminatedBlockComment Code = "unterminated_block_comment"
	CodeInvalidToken             Code = "invalid_token"
)

// Error is the structured record of the last lexical failure, kept on the
// lexer so a caller that only has the returned error can still recover the
// code, description and position.
type Error struct {
	Code        Code
	Description string
	Pos         token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// fail records the structured error and returns the matching kind error.
func (l *Lexer) fail(kind *errors.Kind, code Code, pos token.Position, args ...interface{}) error {
	err := kind.New(args...)
	l.lastErr = &Error{Code: code, Description: err.Error(), Pos: pos}
	return err
}
