package lexer

import (
	"strconv"
	"strings"

	"github.com/tomdoesdev/lexkit/internal/token"
)

// Lexer walks a complete source string and produces a positioned token
// sequence. A lexer is reusable for sequential runs (tokens accumulate until
// Reset) but owns its cursor exclusively while a run is in progress, so it is
// not safe for concurrent Run calls.
type Lexer struct {
	// SkipComments discards line/block comment tokens from the output. Their
	// value text is not materialized when this is set.
	SkipComments bool
	// SkipNewlines discards newline tokens from the output.
	SkipNewlines bool

	tokens  []token.Token
	lastErr *Error

	input        string
	position     int  // index of current char in input
	readPosition int  // index after current char
	ch           byte // current char under examination
	pos          token.Position
}

// New creates a new lexer instance.
func New() *Lexer {
	return &Lexer{}
}

// Option configures a single Run call.
type Option func(*runConfig)

type runConfig struct {
	until     token.Kind
	maxTokens int
	onToken   func(token.Token)
}

// Until stops the run after the first token of the given kind has been
// produced. The matching token is included in the output.
func Until(k token.Kind) Option {
	return func(cfg *runConfig) { cfg.until = k }
}

// MaxTokens stops the run once n tokens have been appended to the output.
func MaxTokens(n int) Option {
	return func(cfg *runConfig) { cfg.maxTokens = n }
}

// OnToken invokes fn for every token appended to the output, for streaming
// consumers that do not want to wait for the full sequence.
func OnToken(fn func(token.Token)) Option {
	return func(cfg *runConfig) { cfg.onToken = fn }
}

// Run lexes source, appending recognized tokens to the lexer's output
// sequence. It stops at end of input, at the Until kind, after MaxTokens
// tokens, or on the first lexical error, whichever comes first. On error the
// structured record is retrievable via Err.
func (l *Lexer) Run(source string, opts ...Option) error {
	cfg := runConfig{until: token.INVALID}
	for _, opt := range opts {
		opt(&cfg)
	}

	l.lastErr = nil
	l.input = source
	l.position = 0
	l.readPosition = 0
	l.ch = 0
	l.pos = token.NewPosition()
	l.readChar()
	defer l.release()

	appended := 0
	for {
		l.skipSpace()
		if l.atEOF() {
			return nil
		}
		tok, err := l.scanToken()
		if err != nil {
			return err
		}
		if !l.filtered(tok.Kind) {
			l.tokens = append(l.tokens, tok)
			appended++
			if cfg.onToken != nil {
				cfg.onToken(tok)
			}
		}
		if tok.Kind == cfg.until {
			return nil
		}
		if cfg.maxTokens > 0 && appended >= cfg.maxTokens {
			return nil
		}
	}
}

// Tokens returns the accumulated token sequence.
func (l *Lexer) Tokens() []token.Token {
	return l.tokens
}

// Err returns the structured record of the last lexical error, or nil.
func (l *Lexer) Err() *Error {
	return l.lastErr
}

// Reset clears tokens, error and position without discarding the skip flags.
func (l *Lexer) Reset() {
	l.tokens = nil
	l.lastErr = nil
	l.pos = token.NewPosition()
	l.release()
}

// release drops the cursor state so the source string is not retained after
// a run completes or fails.
func (l *Lexer) release() {
	l.input = ""
	l.position = 0
	l.readPosition = 0
	l.ch = 0
}

func (l *Lexer) filtered(k token.Kind) bool {
	switch k {
	case token.LINECOMMENT, token.BLOCKCOMMENT:
		return l.SkipComments
	case token.NEWLINE:
		return l.SkipNewlines
	}
	return false
}

// readChar advances the cursor one character. The position advances over the
// character being left behind, so l.pos always names the current character.
func (l *Lexer) readChar() {
	if l.readPosition > 0 && l.position < len(l.input) {
		l.pos.Advance(l.input[l.position])
	}
	l.position = l.readPosition
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.readPosition++
}

// peekChar returns the next character without advancing the cursor.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// skipSpace skips spaces, tabs and carriage returns. Newlines are tokens of
// their own and are not skipped here.
func (l *Lexer) skipSpace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// scanToken classifies the current character and dispatches to the matching
// sub-recognizer. Every recognizer consumes forward-only with one character
// of lookahead and leaves the cursor just past the token.
func (l *Lexer) scanToken() (token.Token, error) {
	pos := l.pos
	from := l.position

	switch {
	case l.ch == '"':
		return l.scanString('"', token.DOUBLESTRING, pos, from)
	case l.ch == '\'':
		return l.scanString('\'', token.SINGLESTRING, pos, from)
	case isDigit(l.ch):
		return l.scanNumber(pos, from)
	case l.ch == '.' && isDigit(l.peekChar()):
		return l.scanNumber(pos, from)
	case isLetter(l.ch) || l.ch == '_':
		return l.scanWord(pos, from), nil
	case l.ch == '\n':
		l.readChar()
		// newline tokens carry the canonical \n descriptor, not the raw
		// newline character
		return l.emit(token.NEWLINE, token.NEWLINE.String(), pos, from), nil
	case l.ch == '/' && l.peekChar() == '/':
		return l.scanLineComment(pos, from), nil
	case l.ch == '/' && l.peekChar() == '*':
		return l.scanBlockComment(pos, from)
	default:
		return l.scanPunct(pos, from)
	}
}

func (l *Lexer) emit(kind token.Kind, value string, pos token.Position, from int) token.Token {
	return token.Token{Kind: kind, Pos: pos, From: from, To: l.position, Value: value}
}

// scanPunct recognizes punctuation by maximal munch: the longest slice of
// input that is in the punctuation table wins.
func (l *Lexer) scanPunct(pos token.Position, from int) (token.Token, error) {
	for width := 3; width >= 1; width-- {
		if from+width > len(l.input) {
			continue
		}
		text := l.input[from : from+width]
		kind, ok := token.LookupPunct(text)
		if !ok {
			continue
		}
		for i := 0; i < width; i++ {
			l.readChar()
		}
		return l.emit(kind, text, pos, from), nil
	}

	tok := token.Token{Kind: token.INVALID, Pos: pos, From: from, To: from + 1, Value: string(l.ch)}
	return tok, l.fail(ErrInvalidToken, CodeInvalidToken, pos, tok.Value, pos)
}

// scanWord recognizes an identifier or one of the keyword literals.
func (l *Lexer) scanWord(pos token.Position, from int) token.Token {
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	word := l.input[from:l.position]
	return l.emit(lookupWord(word), word, pos, from)
}

// scanNumber recognizes every numeric literal form: decimal integers and
// floats, exponent variants, and prefixed hex/binary literals.
func (l *Lexer) scanNumber(pos token.Position, from int) (token.Token, error) {
	if l.ch == '0' {
		switch l.peekChar() {
		case 'x', 'X':
			l.readChar()
			l.readChar()
			for isHexDigit(l.ch) {
				l.readChar()
			}
			return l.emit(token.HEX, l.input[from:l.position], pos, from), nil
		case 'b', 'B':
			l.readChar()
			l.readChar()
			for l.ch == '0' || l.ch == '1' {
				l.readChar()
			}
			return l.emit(token.BIN, l.input[from:l.position], pos, from), nil
		}
	}

	sawDot := false
	sawExp := false
	if l.ch == '.' {
		// dispatch guarantees a digit follows
		sawDot = true
		l.readChar()
	}

scan:
	for {
		switch {
		case isDigit(l.ch):
			l.readChar()
		case l.ch == '.' && !sawDot && !sawExp && isDigit(l.peekChar()):
			sawDot = true
			l.readChar()
		case l.ch == 'e' || l.ch == 'E':
			if sawExp {
				return token.Token{}, l.fail(ErrDuplicateExponent, CodeDuplicateExponent, l.pos, l.pos)
			}
			sawExp = true
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if !isDigit(l.ch) {
				return token.Token{}, l.fail(ErrMalformedExponent, CodeMalformedExponent, l.pos, l.pos)
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		default:
			break scan
		}
	}

	kind := token.INT
	switch {
	case sawExp && sawDot:
		kind = token.FLOATEXP
	case sawExp:
		kind = token.INTEXP
	case sawDot:
		kind = token.FLOAT
	}
	return l.emit(kind, l.input[from:l.position], pos, from), nil
}

// scanString recognizes a quoted string literal, decoding backslash escapes
// and \xHHHH / \XHHHHHHHH unicode escapes into the token value. The token
// span includes the quotes; the value does not.
func (l *Lexer) scanString(quote byte, kind token.Kind, pos token.Position, from int) (token.Token, error) {
	l.readChar() // opening quote

	var value strings.Builder
	for l.ch != quote {
		if l.atEOF() {
			return token.Token{}, l.fail(ErrUnterminatedString, CodeUnterminatedString, pos, pos)
		}
		if l.ch != '\\' {
			value.WriteByte(l.ch)
			l.readChar()
			continue
		}

		l.readChar() // backslash
		if l.atEOF() {
			return token.Token{}, l.fail(ErrUnterminatedString, CodeUnterminatedString, pos, pos)
		}
		switch l.ch {
		case 'n':
			value.WriteByte('\n')
		case 't':
			value.WriteByte('\t')
		case 'r':
			value.WriteByte('\r')
		case '0':
			value.WriteByte(0)
		case 'b':
			value.WriteByte('\b')
		case 'a':
			value.WriteByte('\a')
		case 'f':
			value.WriteByte('\f')
		case 'v':
			value.WriteByte('\v')
		case 'x':
			if err := l.scanUnicodeEscape(&value, 4); err != nil {
				return token.Token{}, err
			}
			continue
		case 'X':
			if err := l.scanUnicodeEscape(&value, 8); err != nil {
				return token.Token{}, err
			}
			continue
		default:
			// escaped quote, escaped backslash, or an unknown escape that
			// passes the character through untouched
			value.WriteByte(l.ch)
		}
		l.readChar()
	}

	l.readChar() // closing quote
	return l.emit(kind, value.String(), pos, from), nil
}

// scanUnicodeEscape decodes up to maxDigits hex digits after \x or \X into a
// single code point. At least one digit must be present.
func (l *Lexer) scanUnicodeEscape(value *strings.Builder, maxDigits int) error {
	l.readChar() // x or X

	digits := 0
	start := l.position
	for digits < maxDigits && isHexDigit(l.ch) {
		digits++
		l.readChar()
	}
	if digits == 0 {
		return l.fail(ErrMalformedUnicodeEscape, CodeMalformedUnicodeEscape, l.pos, l.pos)
	}

	cp, err := strconv.ParseUint(l.input[start:l.position], 16, 32)
	if err != nil {
		return l.fail(ErrMalformedUnicodeEscape, CodeMalformedUnicodeEscape, l.pos, l.pos)
	}
	value.WriteRune(rune(cp))
	return nil
}

// scanLineComment recognizes // up to but not including the newline. The
// value text is only materialized when comments are kept.
func (l *Lexer) scanLineComment(pos token.Position, from int) token.Token {
	for l.ch != '\n' && !l.atEOF() {
		l.readChar()
	}
	value := ""
	if !l.SkipComments {
		value = l.input[from:l.position]
	}
	return l.emit(token.LINECOMMENT, value, pos, from)
}

// scanBlockComment recognizes /* ... */ including the delimiters.
func (l *Lexer) scanBlockComment(pos token.Position, from int) (token.Token, error) {
	l.readChar() // /
	l.readChar() // *
	for {
		if l.atEOF() {
			return token.Token{}, l.fail(ErrUnterminatedBlockComment, CodeUnterminatedBlockComment, pos, pos)
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}
	value := ""
	if !l.SkipComments {
		value = l.input[from:l.position]
	}
	return l.emit(token.BLOCKCOMMENT, value, pos, from), nil
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

// lookupWord classifies a scanned word as a keyword literal or identifier.
func lookupWord(word string) token.Kind {
	switch word {
	case "true":
		return token.TRUE
	case "false":
		return token.FALSE
	case "null":
		return token.NULL
	default:
		return token.IDENT
	}
}
