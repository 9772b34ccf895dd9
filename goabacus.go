// Package goabacus evaluates integer arithmetic expressions.
//
// GoAbacus is a small three-stage pipeline: a lexer turns the input
// string into tokens, a recursive descent parser builds a binary
// expression tree, and an evaluator reduces the tree to an int64.
// The grammar covers decimal integers, '+', '-' and parentheses —
// nothing else, by design.
//
// # Quick Start
//
//	// Simple evaluation
//	result, err := goabacus.Eval("(13+4)-(12+1)")
//
//	// Compile once, evaluate many times
//	expr, err := goabacus.Compile("(13+4)-(12+1)")
//	eval := evaluator.New()
//	result1, _ := eval.Eval(ctx, expr)
//	result2, _ := eval.Eval(ctx, expr)
//
//	// With options
//	result, err := goabacus.Eval("1+2+3",
//	    goabacus.WithTimeout(5*time.Second),
//	    goabacus.WithDebug(true),
//	)
//
//	// Reuse compilations across calls
//	eval := evaluator.New(evaluator.WithCaching(true))
//	result1, _ := eval.EvalSource(ctx, "(13+4)-(12+1)")
//	result2, _ := eval.EvalSource(ctx, "(13+4)-(12+1)") // cache hit
//
// # Errors
//
// Every failure is a *types.Error carrying a code, a byte offset into
// the source and the offending text. types.Error.Kind() classifies them:
// invalid character, malformed expression, or out-of-range result. The
// library itself never prints and never logs above debug level.
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/sandrolain/goabacus/pkg/parser
//   - Evaluator: github.com/sandrolain/goabacus/pkg/evaluator
//   - Types: github.com/sandrolain/goabacus/pkg/types
package goabacus

import (
	"context"
	"fmt"
	"time"

	"github.com/sandrolain/goabacus/pkg/evaluator"
	"github.com/sandrolain/goabacus/pkg/parser"
	"github.com/sandrolain/goabacus/pkg/types"
)

// Version returns the current version of GoAbacus.
func Version() string {
	return "v0.1.0-dev"
}

// Compile compiles an arithmetic expression for repeated evaluation.
//
// The compiled expression can be evaluated multiple times and is safe
// for concurrent use.
//
// Example:
//
//	expr, err := goabacus.Compile("(13+4)-(12+1)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, _ := evaluator.New().Eval(ctx, expr)
func Compile(source string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Compile(source, opts...)
}

// Eval is a convenience function that compiles and evaluates an
// expression in a single call.
//
// Each call builds a fresh evaluator, so nothing is reused between
// calls — WithCaching only pays off on an evaluator you keep. For
// repeated evaluations, use Compile once, or retain an
// evaluator.New(evaluator.WithCaching(true)) and call its EvalSource.
//
// Example:
//
//	result, err := goabacus.Eval("(13+4)-(12+1)")
func Eval(source string, opts ...evaluator.EvalOption) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	eval := evaluator.New(opts...)
	return eval.EvalSource(ctx, source)
}

// EvalWithContext evaluates an expression with a custom context.
func EvalWithContext(ctx context.Context, source string, opts ...evaluator.EvalOption) (int64, error) {
	eval := evaluator.New(opts...)
	return eval.EvalSource(ctx, source)
}

// MustCompile is like Compile but panics if the expression cannot be
// compiled. It simplifies safe initialization of global variables.
func MustCompile(source string) *types.Expression {
	expr, err := Compile(source)
	if err != nil {
		panic(fmt.Sprintf("goabacus: Compile(%q): %v", source, err))
	}
	return expr
}

// Option re-exports for the common case of configuring Eval directly.
var (
	// WithCaching enables expression compilation caching.
	WithCaching = evaluator.WithCaching
	// WithCacheSize sets the compilation cache capacity.
	WithCacheSize = evaluator.WithCacheSize
	// WithTimeout sets the evaluation timeout.
	WithTimeout = evaluator.WithTimeout
	// WithDebug enables debug logging.
	WithDebug = evaluator.WithDebug
	// WithLogger sets a custom structured logger.
	WithLogger = evaluator.WithLogger
	// WithMaxDepth sets the maximum evaluation depth.
	WithMaxDepth = evaluator.WithMaxDepth
)
