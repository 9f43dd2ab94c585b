package token

import (
	"strconv"

	"github.com/spf13/cast"
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrNotAnInteger is returned when an integer coercion is attempted on a
	// token whose kind cannot carry an integer value.
	ErrNotAnInteger = errors.NewKind("%s token cannot be coerced to an integer")
	// ErrNotAFloat is returned when a float coercion is attempted on a token
	// whose kind cannot carry a float value.
	ErrNotAFloat = errors.NewKind("%s token cannot be coerced to a float")
	// ErrNotABoolean is returned when a boolean coercion is attempted on a
	// token that is not the true or false keyword.
	ErrNotABoolean = errors.NewKind("%s token cannot be coerced to a boolean")
)

// Int64 parses the token text as an integer. Plain, hexadecimal and binary
// literals parse in their own base (the 0x/0b prefix is part of the text, so
// base-0 parsing picks the right one); exponent integers such as 1e3 go
// through a float parse and truncate. String literal tokens parse whatever
// integer text they contain.
func (t Token) Int64() (int64, error) {
	switch {
	case t.Kind == INTEXP:
		f, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	case t.IsIntegerLike() || t.IsString():
		return cast.ToInt64E(t.Value)
	default:
		return 0, ErrNotAnInteger.New(t.Kind)
	}
}

// Float64 parses the token text as a decimal float. Only float-like and
// string literal tokens are accepted.
func (t Token) Float64() (float64, error) {
	if t.IsFloatLike() || t.IsString() {
		return cast.ToFloat64E(t.Value)
	}
	return 0, ErrNotAFloat.New(t.Kind)
}

// StringValue returns the token's decoded text: for string literals the
// post-escape-decoding content, for everything else the raw or descriptor
// text the lexer stored.
func (t Token) StringValue() string {
	return t.Value
}

// Bool returns the value of a true/false keyword token.
func (t Token) Bool() (bool, error) {
	switch t.Kind {
	case TRUE:
		return true, nil
	case FALSE:
		return false, nil
	default:
		return false, ErrNotABoolean.New(t.Kind)
	}
}
