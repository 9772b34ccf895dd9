package evaluator

import (
	"context"
	"log/slog"
	"math"

	"github.com/sandrolain/goabacus/pkg/types"
)

// evalNode reduces one tree node to its value, dispatching over the two
// expression variants. Recursion depth equals tree depth; the tree is
// acyclic by construction so evaluation always terminates.
func (e *Evaluator) evalNode(ctx context.Context, node types.Expr, depth int) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if e.opts.MaxDepth > 0 && depth > e.opts.MaxDepth {
		return 0, &types.Error{
			Code:     types.ErrStackOverflow,
			Message:  "Expression tree exceeds maximum evaluation depth",
			Position: node.Pos(),
		}
	}

	switch n := node.(type) {
	case *types.IntegerLiteral:
		return n.Value, nil

	case *types.BinaryOperation:
		left, err := e.evalNode(ctx, n.Left, depth+1)
		if err != nil {
			return 0, err
		}
		right, err := e.evalNode(ctx, n.Right, depth+1)
		if err != nil {
			return 0, err
		}

		result, err := e.applyOperator(n, left, right)
		if err != nil {
			return 0, err
		}

		if e.opts.Debug {
			e.logger.DebugContext(ctx, "binary operation",
				slog.String("op", n.Op.String()),
				slog.Int64("left", left),
				slog.Int64("right", right),
				slog.Int64("result", result))
		}
		return result, nil

	default:
		// Unreachable: types.Expr is sealed to the two variants above.
		return 0, &types.Error{
			Code:     types.ErrSyntaxError,
			Message:  "Unknown expression node",
			Position: node.Pos(),
		}
	}
}

// applyOperator applies the node's operator with checked int64
// arithmetic: an operation whose mathematical result does not fit in
// int64 fails with an overflow error instead of wrapping.
func (e *Evaluator) applyOperator(n *types.BinaryOperation, left, right int64) (int64, error) {
	switch n.Op {
	case types.Addition:
		if result, ok := addInt64(left, right); ok {
			return result, nil
		}
	case types.Subtraction:
		if result, ok := subInt64(left, right); ok {
			return result, nil
		}
	}
	return 0, &types.Error{
		Code:     types.ErrOverflow,
		Message:  "Arithmetic overflow",
		Position: n.Pos(),
	}
}

// addInt64 returns a+b and whether the sum fits in int64.
func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// subInt64 returns a-b and whether the difference fits in int64.
func subInt64(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}
