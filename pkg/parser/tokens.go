package parser

import "strings"

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenInteger // 12, 345

	// Operators
	TokenPlus  // +
	TokenMinus // -

	// Grouping symbols
	TokenParenOpen  // (
	TokenParenClose // )
)

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "(eof)"
	case TokenError:
		return "(error)"
	case TokenInteger:
		return "(integer)"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	default:
		return "(unknown)"
	}
}

// Token is one lexical unit of an expression.
//
// Value preserves the exact substring the token was lexed from, so that
// concatenating the values of a full token sequence reproduces the input.
// Tokens are created only by the lexer and never mutated afterwards.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// Tokens is a materialized, ordered token sequence as produced by [Lex].
type Tokens []Token

// String renders the sequence in diagnostic form: each token's source
// text backtick-delimited, space-separated, e.g.
//
//	`(` `13` `+` `4` `)`
func (ts Tokens) String() string {
	var sb strings.Builder
	for i, t := range ts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('`')
		sb.WriteString(t.Value)
		sb.WriteByte('`')
	}
	return sb.String()
}

// singleCharTokens maps the four single-character symbols of the grammar
// to their token types. Zero (TokenEOF) means "not a symbol".
var singleCharTokens = [128]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'(': TokenParenOpen,
	')': TokenParenClose,
}

// lookupSymbol returns the token type for a single-character symbol,
// or TokenEOF (zero) when ch is not one.
func lookupSymbol(ch rune) TokenType {
	if ch < 0 || ch >= 128 {
		return TokenEOF
	}
	return singleCharTokens[ch]
}
