package parser

import (
	"fmt"

	"github.com/sandrolain/goabacus/pkg/types"
)

const eof = -1

// Lexer converts an arithmetic expression into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go"
// technique, trimmed to the five-symbol character set of the grammar.
//
// The supported input alphabet is exactly the digits '0'-'9' and the
// symbols '+', '-', '(' and ')'. Anything else — whitespace included —
// is an invalid character and stops the lexer with a structured error.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	err     error  // First error encountered
}

// NewLexer creates a new lexer from the provided input string.
// The input is tokenized by successive calls to the Next method.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// Lex tokenizes the whole input into a materialized [Tokens] sequence.
//
// On success the sequence contains every token in input order, without
// the trailing EOF sentinel; concatenating the token values reproduces
// the input exactly. On failure the first error is returned and the
// partial sequence is discarded.
func Lex(input string) (Tokens, error) {
	l := NewLexer(input)
	var tokens Tokens
	for {
		t := l.Next()
		switch t.Type {
		case TokenEOF:
			return tokens, nil
		case TokenError:
			return nil, l.err
		}
		tokens = append(tokens, t)
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all
// subsequent calls. On an invalid character it returns a TokenError
// token and records the error, retrievable via the Error method.
func (l *Lexer) Next() Token {
	ch := l.nextByte()
	if ch == eof {
		return l.eof()
	}

	if tt := lookupSymbol(ch); tt > 0 {
		return l.newToken(tt)
	}

	if isDigit(ch) {
		return l.scanInteger()
	}

	return l.invalidCharacter(ch)
}

// Error returns the first error encountered during lexing, if any.
func (l *Lexer) Error() error {
	return l.err
}

// scanInteger consumes the maximal run of consecutive decimal digits
// starting at the already-consumed first digit and emits one integer
// token for the whole run. "12" is always one token, never two.
func (l *Lexer) scanInteger() Token {
	for l.current < l.length && isDigit(rune(l.input[l.current])) {
		l.current++
	}
	return l.newToken(TokenInteger)
}

// Helper methods

func (l *Lexer) eof() Token {
	return Token{
		Type:     TokenEOF,
		Position: l.current,
	}
}

func (l *Lexer) invalidCharacter(ch rune) Token {
	t := l.newToken(TokenError)
	l.err = &types.Error{
		Code:     types.ErrInvalidCharacter,
		Message:  fmt.Sprintf("Invalid character %q", ch),
		Position: t.Position,
		Token:    t.Value,
	}
	return t
}

func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:     tt,
		Value:    l.input[l.start:l.current],
		Position: l.start,
	}
	l.start = l.current
	return t
}

// nextByte consumes and returns the next input character. The alphabet
// is pure ASCII, so the lexer advances one byte at a time; any non-ASCII
// byte falls through to the invalid-character path unchanged.
func (l *Lexer) nextByte() rune {
	if l.err != nil || l.current >= l.length {
		return eof
	}
	ch := rune(l.input[l.current])
	l.current++
	return ch
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
