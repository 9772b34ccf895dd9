package types

import (
	"fmt"
	"strconv"
)

// Operator identifies a binary arithmetic operator.
type Operator uint8

// The grammar defines exactly two operators. There is deliberately no
// multiplication or division; adding an operator requires extending the
// grammar definition first.
const (
	Addition Operator = iota
	Subtraction
)

// String returns the source form of the operator.
func (op Operator) String() string {
	switch op {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	default:
		return fmt.Sprintf("Operator(%d)", uint8(op))
	}
}

// Expr is a node of a parsed arithmetic expression tree.
//
// The interface is sealed: the only implementations are [IntegerLiteral]
// and [BinaryOperation]. Evaluation and rendering dispatch over these two
// variants with a type switch.
//
// Nodes are immutable once the parser returns them and are never shared
// between trees: every BinaryOperation exclusively owns its two children,
// so a tree is acyclic by construction and traversal always terminates.
type Expr interface {
	// Pos returns the byte offset in the source where the node starts.
	Pos() int
	// String renders the node in canonical fully parenthesized form.
	String() string

	sealed()
}

// IntegerLiteral is a leaf node holding a decimal integer value.
type IntegerLiteral struct {
	Value    int64
	Position int
}

// Pos returns the byte offset of the literal in the source.
func (n *IntegerLiteral) Pos() int { return n.Position }

// String returns the decimal rendering of the literal.
func (n *IntegerLiteral) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n *IntegerLiteral) sealed() {}

// BinaryOperation is an internal node applying Op to its two operands.
// Left and Right are always non-nil in any tree produced by the parser.
type BinaryOperation struct {
	Op       Operator
	Left     Expr
	Right    Expr
	Position int
}

// Pos returns the byte offset of the left operand in the source.
func (n *BinaryOperation) Pos() int { return n.Position }

// String renders the operation fully parenthesized, e.g. "((1+2)-3)".
func (n *BinaryOperation) String() string {
	return "(" + n.Left.String() + n.Op.String() + n.Right.String() + ")"
}

func (n *BinaryOperation) sealed() {}

// arenaChunkSize is the number of nodes pre-allocated per arena chunk.
// Expressions rarely exceed a few dozen nodes, so one chunk of each kind
// covers the common case.
const arenaChunkSize = 64

// NodeArena is a bump-pointer allocator for expression nodes.
//
// Instead of allocating each node individually on the heap, the arena
// pre-allocates fixed-size chunks per node kind and hands out pointers
// into them. Chunks are append-only and nodes are never recycled, so
// returned pointers stay valid for the arena's whole lifetime.
//
// # Lifetime
//
// The arena MUST stay alive as long as any pointer returned by it is
// reachable. Attaching the arena to the [Expression] achieves this: the
// GC collects the arena (and the whole tree with it) when the Expression
// is released, including on eviction from the LRU cache.
//
// # Thread safety
//
// NodeArena is NOT thread-safe. Each parser owns its own arena and never
// shares it across goroutines; a finished Expression only reads the tree.
type NodeArena struct {
	literals [][]IntegerLiteral
	litPos   int
	binaries [][]BinaryOperation
	binPos   int
}

// NewNodeArena allocates an arena pre-warmed with one chunk per node kind.
func NewNodeArena() *NodeArena {
	return &NodeArena{
		literals: [][]IntegerLiteral{make([]IntegerLiteral, arenaChunkSize)},
		binaries: [][]BinaryOperation{make([]BinaryOperation, arenaChunkSize)},
	}
}

// NewLiteral returns an arena-allocated IntegerLiteral.
func (a *NodeArena) NewLiteral(value int64, position int) *IntegerLiteral {
	if a.litPos >= arenaChunkSize {
		a.literals = append(a.literals, make([]IntegerLiteral, arenaChunkSize))
		a.litPos = 0
	}
	n := &a.literals[len(a.literals)-1][a.litPos]
	a.litPos++
	n.Value = value
	n.Position = position
	return n
}

// NewBinary returns an arena-allocated BinaryOperation with both operands set.
func (a *NodeArena) NewBinary(op Operator, left, right Expr, position int) *BinaryOperation {
	if a.binPos >= arenaChunkSize {
		a.binaries = append(a.binaries, make([]BinaryOperation, arenaChunkSize))
		a.binPos = 0
	}
	n := &a.binaries[len(a.binaries)-1][a.binPos]
	a.binPos++
	n.Op = op
	n.Left = left
	n.Right = right
	n.Position = position
	return n
}
