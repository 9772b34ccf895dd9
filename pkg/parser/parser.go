// Package parser implements the lexer and parser for GoAbacus arithmetic
// expressions.
//
// # Architecture
//
// The package consists of two stages:
//   - Lexer: tokenizes the input into integers, operators and parentheses
//   - Parser: builds a binary expression tree from the token stream
//
// The grammar is deliberately narrow:
//
//	expression := term (('+' | '-') term)*
//	term       := INTEGER | '(' expression ')'
//
// Operator chains are left-associative ("1+2+3" parses as "(1+2)+3") and
// parentheses nest to arbitrary depth, matched structurally by the
// recursive grouping rule rather than by scanning ahead for a ')'.
//
// # Example
//
//	expr, err := parser.Parse("(13+4)-(12+1)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	root := expr.Root()
//
// # Errors
//
// All failures are reported as *types.Error with a code, a byte offset
// and the offending source text. The parser never recovers or returns a
// partial tree: it either produces a complete expression or fails.
package parser

import (
	"github.com/sandrolain/goabacus/pkg/types"
)

// Parse parses an arithmetic expression and returns the compiled
// Expression.
//
// The function tokenizes the input, builds the expression tree and
// validates that the whole input was consumed. If parsing fails, it
// returns a detailed error with position information.
func Parse(source string) (*types.Expression, error) {
	p := NewParser(source)
	return p.Parse()
}

// Compile is an alias for Parse that accepts compile options.
func Compile(source string, opts ...CompileOption) (*types.Expression, error) {
	p := NewParser(source, opts...)
	return p.Parse()
}

// CompileOption configures compilation behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits parenthesis nesting depth to prevent stack
	// overflow on pathological inputs. Defaults to 100.
	MaxDepth int
}

// WithMaxDepth sets the maximum parenthesis nesting depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}
