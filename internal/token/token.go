package token

// Kind identifies the lexical category of a token
type Kind int

const (
	// Special tokens
	INVALID Kind = iota
	NEWLINE
	LINECOMMENT
	BLOCKCOMMENT

	// Identifiers and keyword literals
	IDENT
	TRUE
	FALSE
	NULL

	// Numeric literals
	INT
	FLOAT
	INTEXP
	FLOATEXP
	HEX
	BIN

	// String literals
	SINGLESTRING // '...'
	DOUBLESTRING // "..."

	// Punctuation
	DOT        // .
	DOTDOT     // ..
	ELLIPSIS   // ...
	BANG       // !
	BANGEQ     // !=
	QUESTION   // ?
	HASH       // #
	AT         // @
	DOLLAR     // $
	PERCENT    // %
	LPAREN     // (
	RPAREN     // )
	LBRACKET   // [
	RBRACKET   // ]
	LBRACE     // {
	RBRACE     // }
	CARET      // ^
	TILDE      // ~
	BACKTICK   // `
	BACKSLASH  // \
	SLASH      // /
	COMMA      // ,
	SEMICOLON  // ;
	GT         // >
	SHR        // >>
	GTEQ       // >=
	LT         // <
	SHL        // <<
	LTEQ       // <=
	ASSIGN     // =
	EQEQ       // ==
	PIPE       // |
	OROR       // ||
	AMP        // &
	ANDAND     // &&
	COLON      // :
	COLONCOLON // ::
	MINUS      // -
	MINUSMINUS // --
	ARROW      // ->
	PLUS       // +
	PLUSPLUS   // ++
	STAR       // *
	STARSTAR   // **
)

// punctText maps every punctuation kind to its literal source text. The map
// is built once and never mutated; LookupPunct answers the reverse direction.
var punctText = map[Kind]string{
	DOT:        ".",
	DOTDOT:     "..",
	ELLIPSIS:   "...",
	BANG:       "!",
	BANGEQ:     "!=",
	QUESTION:   "?",
	HASH:       "#",
	AT:         "@",
	DOLLAR:     "$",
	PERCENT:    "%",
	LPAREN:     "(",
	RPAREN:     ")",
	LBRACKET:   "[",
	RBRACKET:   "]",
	LBRACE:     "{",
	RBRACE:     "}",
	CARET:      "^",
	TILDE:      "~",
	BACKTICK:   "`",
	BACKSLASH:  "\\",
	SLASH:      "/",
	COMMA:      ",",
	SEMICOLON:  ";",
	GT:         ">",
	SHR:        ">>",
	GTEQ:       ">=",
	LT:         "<",
	SHL:        "<<",
	LTEQ:       "<=",
	ASSIGN:     "=",
	EQEQ:       "==",
	PIPE:       "|",
	OROR:       "||",
	AMP:        "&",
	ANDAND:     "&&",
	COLON:      ":",
	COLONCOLON: "::",
	MINUS:      "-",
	MINUSMINUS: "--",
	ARROW:      "->",
	PLUS:       "+",
	PLUSPLUS:   "++",
	STAR:       "*",
	STARSTAR:   "**",
}

var punctKind = func() map[string]Kind {
	m := make(map[string]Kind, len(punctText))
	for k, text := range punctText {
		m[text] = k
	}
	return m
}()

// PunctText returns the literal text of a punctuation kind.
func PunctText(k Kind) (string, bool) {
	text, ok := punctText[k]
	return text, ok
}

// LookupPunct returns the punctuation kind matching the given literal text.
func LookupPunct(text string) (Kind, bool) {
	k, ok := punctKind[text]
	return k, ok
}

// String returns the human-readable descriptor for the kind, used in
// diagnostics. Punctuation kinds describe themselves by their literal text.
func (k Kind) String() string {
	switch k {
	case INVALID:
		return "invalid"
	case NEWLINE:
		return "\\n"
	case LINECOMMENT:
		return "// comment"
	case BLOCKCOMMENT:
		return "/* comment */"
	case IDENT:
		return "identifier"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case NULL:
		return "null"
	case INT:
		return "integer"
	case FLOAT:
		return "float"
	case INTEXP:
		return "integer exp"
	case FLOATEXP:
		return "float exp"
	case HEX:
		return "hexnum lit"
	case BIN:
		return "binary lit"
	case SINGLESTRING:
		return "'...' string"
	case DOUBLESTRING:
		return "\"...\" string"
	default:
		if text, ok := punctText[k]; ok {
			return text
		}
		return "unknown"
	}
}

// Token is a single recognized lexical unit. Tokens are immutable once the
// lexer has produced them: Pos is a copy of the cursor position taken when
// the token started, and From/To delimit the token's byte span in the
// original source (From inclusive, To exclusive).
type Token struct {
	Kind  Kind
	Pos   Position
	From  int
	To    int
	Value string
}

// Invalid returns the default token: kind INVALID, position (-1,-1),
// offsets -1, empty value.
func Invalid() Token {
	return Token{Kind: INVALID, Pos: NoPosition(), From: -1, To: -1}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool {
	return t.Kind == IDENT
}

// IsLiteral reports whether the token is a literal value: a keyword literal,
// a number, or a string.
func (t Token) IsLiteral() bool {
	return t.IsBool() || t.IsNull() || t.IsIntegerLike() || t.IsFloatLike() || t.IsString()
}

// IsIntegerLike reports whether the token's text denotes an integer value:
// plain, exponent, hexadecimal or binary form.
func (t Token) IsIntegerLike() bool {
	return t.Kind == INT || t.Kind == INTEXP || t.Kind == HEX || t.Kind == BIN
}

// IsFloatLike reports whether the token's text denotes a float value.
func (t Token) IsFloatLike() bool {
	return t.Kind == FLOAT || t.Kind == FLOATEXP
}

// IsString reports whether the token is a string literal of either quoting.
func (t Token) IsString() bool {
	return t.Kind == SINGLESTRING || t.Kind == DOUBLESTRING
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == LINECOMMENT || t.Kind == BLOCKCOMMENT
}

// IsPunct reports whether the token is one of the fixed punctuation symbols.
func (t Token) IsPunct() bool {
	_, ok := punctText[t.Kind]
	return ok
}

// IsNewline reports whether the token is a newline.
func (t Token) IsNewline() bool {
	return t.Kind == NEWLINE
}

// IsBool reports whether the token is the true or false keyword.
func (t Token) IsBool() bool {
	return t.Kind == TRUE || t.Kind == FALSE
}

// IsNull reports whether the token is the null keyword.
func (t Token) IsNull() bool {
	return t.Kind == NULL
}
