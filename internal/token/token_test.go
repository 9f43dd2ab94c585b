package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptors(t *testing.T) {
	cases := map[Kind]string{
		TRUE:         "true",
		FALSE:        "false",
		NULL:         "null",
		INT:          "integer",
		FLOAT:        "float",
		INTEXP:       "integer exp",
		FLOATEXP:     "float exp",
		HEX:          "hexnum lit",
		BIN:          "binary lit",
		SINGLESTRING: "'...' string",
		DOUBLESTRING: "\"...\" string",
		INVALID:      "invalid",
		NEWLINE:      "\\n",
		IDENT:        "identifier",
		LINECOMMENT:  "// comment",
		BLOCKCOMMENT: "/* comment */",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestPunctTableBijection(t *testing.T) {
	count := 0
	for k := DOT; k <= STARSTAR; k++ {
		text, ok := PunctText(k)
		require.True(t, ok, "kind %d has no punctuation text", int(k))
		assert.Equal(t, text, k.String())

		back, ok := LookupPunct(text)
		require.True(t, ok)
		assert.Equal(t, k, back, "round trip for %q", text)
		count++
	}
	assert.Equal(t, 44, count)

	_, ok := PunctText(NEWLINE)
	assert.False(t, ok)
	_, ok = LookupPunct("//")
	assert.False(t, ok)
}

func TestInvalidDefault(t *testing.T) {
	tok := Invalid()
	assert.Equal(t, INVALID, tok.Kind)
	assert.Equal(t, Position{Line: -1, Column: -1}, tok.Pos)
	assert.Equal(t, -1, tok.From)
	assert.Equal(t, -1, tok.To)
	assert.Empty(t, tok.Value)
}

func TestPredicates(t *testing.T) {
	assert.True(t, Token{Kind: IDENT}.IsIdent())
	assert.False(t, Token{Kind: TRUE}.IsIdent())

	for _, k := range []Kind{INT, INTEXP, HEX, BIN} {
		assert.True(t, Token{Kind: k}.IsIntegerLike(), "kind %s", k)
		assert.True(t, Token{Kind: k}.IsLiteral(), "kind %s", k)
	}
	assert.False(t, Token{Kind: FLOAT}.IsIntegerLike())

	for _, k := range []Kind{FLOAT, FLOATEXP} {
		assert.True(t, Token{Kind: k}.IsFloatLike(), "kind %s", k)
	}
	assert.False(t, Token{Kind: INT}.IsFloatLike())

	assert.True(t, Token{Kind: SINGLESTRING}.IsString())
	assert.True(t, Token{Kind: DOUBLESTRING}.IsString())
	assert.True(t, Token{Kind: LINECOMMENT}.IsComment())
	assert.True(t, Token{Kind: BLOCKCOMMENT}.IsComment())
	assert.True(t, Token{Kind: NEWLINE}.IsNewline())
	assert.True(t, Token{Kind: TRUE}.IsBool())
	assert.True(t, Token{Kind: FALSE}.IsBool())
	assert.True(t, Token{Kind: NULL}.IsNull())

	assert.True(t, Token{Kind: ARROW}.IsPunct())
	assert.True(t, Token{Kind: LBRACE}.IsPunct())
	assert.False(t, Token{Kind: IDENT}.IsPunct())
	assert.False(t, Token{Kind: NEWLINE}.IsPunct())
}

func TestInt64(t *testing.T) {
	cases := []struct {
		tok  Token
		want int64
	}{
		{Token{Kind: INT, Value: "42"}, 42},
		{Token{Kind: HEX, Value: "0x1A"}, 26},
		{Token{Kind: BIN, Value: "0b101"}, 5},
		{Token{Kind: INTEXP, Value: "1e3"}, 1000},
		{Token{Kind: SINGLESTRING, Value: "17"}, 17},
	}
	for _, tc := range cases {
		n, err := tc.tok.Int64()
		require.NoError(t, err, "value %q", tc.tok.Value)
		assert.Equal(t, tc.want, n)
	}

	_, err := Token{Kind: TRUE, Value: "true"}.Int64()
	require.Error(t, err)
	assert.True(t, ErrNotAnInteger.Is(err))

	_, err = Token{Kind: FLOAT, Value: "1.5"}.Int64()
	require.Error(t, err)
	assert.True(t, ErrNotAnInteger.Is(err))
}

func TestFloat64(t *testing.T) {
	f, err := Token{Kind: FLOAT, Value: "1.5"}.Float64()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	f, err = Token{Kind: FLOATEXP, Value: "1.5e-3"}.Float64()
	require.NoError(t, err)
	assert.Equal(t, 0.0015, f)

	f, err = Token{Kind: DOUBLESTRING, Value: "2.25"}.Float64()
	require.NoError(t, err)
	assert.Equal(t, 2.25, f)

	_, err = Token{Kind: NULL, Value: "null"}.Float64()
	require.Error(t, err)
	assert.True(t, ErrNotAFloat.Is(err))
}

func TestStringValue(t *testing.T) {
	// string literals hand back their escape-decoded content
	assert.Equal(t, "a\nb", Token{Kind: SINGLESTRING, Value: "a\nb"}.StringValue())
	// other kinds hand back the text the lexer stored
	assert.Equal(t, "42", Token{Kind: INT, Value: "42"}.StringValue())
	assert.Equal(t, "->", Token{Kind: ARROW, Value: "->"}.StringValue())
}

func TestBool(t *testing.T) {
	b, err := Token{Kind: TRUE, Value: "true"}.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	b, err = Token{Kind: FALSE, Value: "false"}.Bool()
	require.NoError(t, err)
	assert.False(t, b)

	_, err = Token{Kind: INT, Value: "1"}.Bool()
	require.Error(t, err)
	assert.True(t, ErrNotABoolean.Is(err))
}

func TestPositionAdvance(t *testing.T) {
	pos := NewPosition()
	assert.Equal(t, Position{Line: 1, Column: 0}, pos)

	pos.Advance('a')
	assert.Equal(t, Position{Line: 1, Column: 1}, pos)

	pos.Advance('\n')
	assert.Equal(t, Position{Line: 2, Column: 0}, pos)

	assert.Equal(t, "2:0", pos.String())
}
