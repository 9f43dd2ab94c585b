// Package reader provides a pull-based cursor over a token sequence with one
// token of lookahead, for use by downstream parsers.
package reader

import (
	"github.com/mitchellh/hashstructure"
	"github.com/tomdoesdev/lexkit/internal/token"
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrUnexpectedToken is returned when the next token does not satisfy the
	// read criteria. The token stays unconsumed.
	ErrUnexpectedToken = errors.NewKind("%s, got %s")
	// ErrEndOfStream is returned when a read or skip runs past the end of the
	// underlying token sequence.
	ErrEndOfStream = errors.NewKind("read past end of token stream")
	// ErrBadSkipArgs is returned when SkipTokens is called with neither a
	// count nor any kinds.
	ErrBadSkipArgs = errors.NewKind("skip requires a count or at least one kind")
)

// whitespaceKinds are the kinds ReadToken skips by default before matching.
var whitespaceKinds = []token.Kind{token.NEWLINE, token.LINECOMMENT, token.BLOCKCOMMENT}

// Source is any pull-style producer of tokens. Next returns false once the
// sequence is exhausted. The reader never pulls more than one token ahead of
// what it has handed out, so lazily produced sequences are safe.
type Source interface {
	Next() (token.Token, bool)
}

// SliceSource adapts a materialized token slice, such as a lexer's output,
// into a Source.
type SliceSource struct {
	tokens []token.Token
	pos    int
}

func NewSliceSource(tokens []token.Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

func (s *SliceSource) Next() (token.Token, bool) {
	if s.pos >= len(s.tokens) {
		return token.Invalid(), false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

// Reader is a single-consumer, forward-only cursor over a token source.
type Reader struct {
	// SkipWhitespace makes ReadToken skip any run of newline and comment
	// tokens before matching. Individual calls can override it.
	SkipWhitespace bool

	src      Source
	ahead    token.Token
	hasAhead bool
	drained  bool
	current  token.Token
}

// New creates a reader over an arbitrary token source.
func New(src Source) *Reader {
	return &Reader{SkipWhitespace: true, src: src, current: token.Invalid()}
}

// FromTokens creates a reader over a materialized token slice.
func FromTokens(tokens []token.Token) *Reader {
	return New(NewSliceSource(tokens))
}

// Peek returns the next token without consuming it. The second result is
// false at end of stream.
func (r *Reader) Peek() (token.Token, bool) {
	if !r.hasAhead && !r.drained {
		tok, ok := r.src.Next()
		if ok {
			r.ahead = tok
			r.hasAhead = true
		} else {
			r.drained = true
		}
	}
	if !r.hasAhead {
		return token.Invalid(), false
	}
	return r.ahead, true
}

// PeekKind returns the kind of the next token, or false at end of stream.
func (r *Reader) PeekKind() (token.Kind, bool) {
	tok, ok := r.Peek()
	if !ok {
		return token.INVALID, false
	}
	return tok.Kind, true
}

// NextIs reports whether the next token's kind is one of kinds. It is false
// at end of stream; use EOF to tell the two cases apart.
func (r *Reader) NextIs(kinds ...token.Kind) bool {
	tok, ok := r.Peek()
	return ok && kindIn(tok.Kind, kinds)
}

// NextIsValue is NextIs with an additional exact-value requirement.
func (r *Reader) NextIsValue(value string, kinds ...token.Kind) bool {
	tok, ok := r.Peek()
	return ok && kindIn(tok.Kind, kinds) && tok.Value == value
}

// Current returns the last token consumed.
func (r *Reader) Current() token.Token {
	return r.current
}

// EOF reports whether the underlying sequence is exhausted.
func (r *Reader) EOF() bool {
	_, ok := r.Peek()
	return !ok
}

// advance consumes the peeked token and records it as current.
func (r *Reader) advance() (token.Token, bool) {
	tok, ok := r.Peek()
	if !ok {
		return token.Invalid(), false
	}
	r.hasAhead = false
	r.current = tok
	return tok, true
}

// ReadOption refines the criteria of a single ReadToken call.
type ReadOption func(*readConfig)

type readConfig struct {
	kinds     []token.Kind
	value     *string
	valueHash *uint64
	skipWS    *bool
	failMsg   string
}

// WithKind requires the next token to be of the given kind.
func WithKind(k token.Kind) ReadOption {
	return func(cfg *readConfig) { cfg.kinds = append(cfg.kinds, k) }
}

// WithKinds requires the next token's kind to be one of kinds.
func WithKinds(kinds ...token.Kind) ReadOption {
	return func(cfg *readConfig) { cfg.kinds = append(cfg.kinds, kinds...) }
}

// WithValue requires the next token's value to equal v exactly.
func WithValue(v string) ReadOption {
	return func(cfg *readConfig) { cfg.value = &v }
}

// WithValueHash requires the hash of the next token's value to equal h.
// Hashes are computed with HashValue.
func WithValueHash(h uint64) ReadOption {
	return func(cfg *readConfig) { cfg.valueHash = &h }
}

// WithSkipWhitespace overrides the reader-level SkipWhitespace flag for one
// call.
func WithSkipWhitespace(on bool) ReadOption {
	return func(cfg *readConfig) { cfg.skipWS = &on }
}

// WithFailMessage replaces the generic mismatch message so parsers can raise
// grammar-specific diagnostics.
func WithFailMessage(msg string) ReadOption {
	return func(cfg *readConfig) { cfg.failMsg = msg }
}

// HashValue computes the hash WithValueHash matches against.
func HashValue(value string) (uint64, error) {
	return hashstructure.Hash(value, nil)
}

// ReadToken consumes the next token only if it satisfies every supplied
// criterion. On a mismatch the token stays unconsumed and the error matches
// ErrUnexpectedToken; running out of tokens is the distinct ErrEndOfStream.
func (r *Reader) ReadToken(opts ...ReadOption) (token.Token, error) {
	var cfg readConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	skip := r.SkipWhitespace
	if cfg.skipWS != nil {
		skip = *cfg.skipWS
	}
	if skip {
		r.SkipWhitespaceTokens()
	}

	next, ok := r.Peek()
	if !ok {
		return token.Invalid(), ErrEndOfStream.New()
	}

	matched := true
	if len(cfg.kinds) > 0 && !kindIn(next.Kind, cfg.kinds) {
		matched = false
	}
	if matched && cfg.value != nil && next.Value != *cfg.value {
		matched = false
	}
	if matched && cfg.valueHash != nil {
		hash, err := HashValue(next.Value)
		if err != nil || hash != *cfg.valueHash {
			matched = false
		}
	}
	if !matched {
		msg := cfg.failMsg
		if msg == "" {
			msg = "failed to read token"
		}
		return token.Invalid(), ErrUnexpectedToken.New(msg, next.Kind)
	}

	tok, _ := r.advance()
	return tok, nil
}

// ReadInteger reads one integer-like token (plain, exponent, hex or binary)
// and returns its coerced value.
func (r *Reader) ReadInteger() (int64, error) {
	tok, err := r.ReadToken(
		WithKinds(token.INT, token.INTEXP, token.HEX, token.BIN),
		WithFailMessage("failed to read an integer token"),
	)
	if err != nil {
		return 0, err
	}
	return tok.Int64()
}

// ReadFloat reads one float-like token and returns its coerced value.
func (r *Reader) ReadFloat() (float64, error) {
	tok, err := r.ReadToken(
		WithKinds(token.FLOAT, token.FLOATEXP),
		WithFailMessage("failed to read a float token"),
	)
	if err != nil {
		return 0, err
	}
	return tok.Float64()
}

// ReadBoolean reads one true/false keyword token and returns its value.
func (r *Reader) ReadBoolean() (bool, error) {
	tok, err := r.ReadToken(
		WithKinds(token.TRUE, token.FALSE),
		WithFailMessage("failed to read a boolean token"),
	)
	if err != nil {
		return false, err
	}
	return tok.Bool()
}

// ReadString reads one string literal token of either quoting and returns
// its decoded value.
func (r *Reader) ReadString() (string, error) {
	tok, err := r.ReadToken(
		WithKinds(token.SINGLESTRING, token.DOUBLESTRING),
		WithFailMessage("failed to read a string token"),
	)
	if err != nil {
		return "", err
	}
	return tok.StringValue(), nil
}

// SkipToken unconditionally consumes one token, recording it as current.
func (r *Reader) SkipToken() error {
	if _, ok := r.advance(); !ok {
		return ErrEndOfStream.New()
	}
	return nil
}

// SkipTokens consumes tokens while within count (when count > 0) and, when
// kinds are given, while the next token's kind is among them. It stops early
// at end of stream. At least one of the two bounds must be supplied.
func (r *Reader) SkipTokens(count int, kinds ...token.Kind) error {
	if count <= 0 && len(kinds) == 0 {
		return ErrBadSkipArgs.New()
	}
	skipped := 0
	for {
		if count > 0 && skipped >= count {
			return nil
		}
		next, ok := r.Peek()
		if !ok {
			return nil
		}
		if len(kinds) > 0 && !kindIn(next.Kind, kinds) {
			return nil
		}
		r.advance()
		skipped++
	}
}

// SkipToToken consumes tokens until the next token's kind is one of kinds,
// or the stream ends. When through is set, the matching token is consumed
// as well.
func (r *Reader) SkipToToken(through bool, kinds ...token.Kind) {
	for {
		next, ok := r.Peek()
		if !ok {
			return
		}
		if kindIn(next.Kind, kinds) {
			if through {
				r.advance()
			}
			return
		}
		r.advance()
	}
}

// SkipWhitespaceTokens consumes any run of newline and comment tokens.
func (r *Reader) SkipWhitespaceTokens() {
	_ = r.SkipTokens(0, whitespaceKinds...)
}

func kindIn(k token.Kind, kinds []token.Kind) bool {
	for _, candidate := range kinds {
		if k == candidate {
			return true
		}
	}
	return false
}
