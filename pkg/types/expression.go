// Package types defines the core type system for GoAbacus.
//
// This package contains type definitions for:
//   - Expression: compiled arithmetic expressions
//   - Expr: expression tree nodes (IntegerLiteral, BinaryOperation)
//   - NodeArena: bump-pointer allocator backing a tree
//   - Error types: structured errors with codes
package types

// Expression represents a compiled arithmetic expression.
//
// An Expression can be evaluated multiple times by passing it to
// [evaluator.Evaluator.Eval]. Once built it is read-only and therefore
// safe for concurrent use by multiple goroutines.
type Expression struct {
	root   Expr
	source string
	arena  *NodeArena
}

// NewExpression creates a new Expression from a tree root.
// The arena keeps the tree's backing storage alive; it may be nil when
// the nodes were heap-allocated individually.
func NewExpression(root Expr, source string, arena *NodeArena) *Expression {
	return &Expression{
		root:   root,
		source: source,
		arena:  arena,
	}
}

// Root returns the root node of the expression tree.
func (e *Expression) Root() Expr {
	return e.root
}

// Source returns the original source text of the expression.
func (e *Expression) Source() string {
	return e.source
}

// String returns the original source text.
func (e *Expression) String() string {
	return e.source
}
