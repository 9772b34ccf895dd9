package parser_test

import (
	"errors"
	"testing"

	"github.com/sandrolain/goabacus/pkg/parser"
	"github.com/sandrolain/goabacus/pkg/types"
)

// parseExpr parses source and fails the test on error.
func parseExpr(t *testing.T, source string) *types.Expression {
	t.Helper()
	expr, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", source, err)
	}
	return expr
}

// expectError parses source and asserts failure with the given code.
func expectError(t *testing.T, source string, code types.ErrorCode) *types.Error {
	t.Helper()
	_, err := parser.Parse(source)
	if err == nil {
		t.Fatalf("Parse(%q): expected error, got none", source)
	}
	var aerr *types.Error
	if !errors.As(err, &aerr) {
		t.Fatalf("Parse(%q): error is %T, want *types.Error", source, err)
	}
	if aerr.Code != code {
		t.Fatalf("Parse(%q): code = %s, want %s", source, aerr.Code, code)
	}
	return aerr
}

// Tree shape is asserted through the canonical fully parenthesized
// rendering: cheap to read in a table and pins associativity exactly.
func TestParserTreeShape(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "single integer", source: "5", want: "5"},
		{name: "simple addition", source: "1+2", want: "(1+2)"},
		{name: "simple subtraction", source: "7-3", want: "(7-3)"},
		{name: "left associative chain", source: "1+2+3", want: "((1+2)+3)"},
		{name: "mixed chain", source: "10-2+5-1", want: "(((10-2)+5)-1)"},
		{name: "parenthesized operand", source: "1+(2+3)", want: "(1+(2+3))"},
		{name: "redundant parens collapse", source: "(((5)))", want: "5"},
		{name: "balanced groups", source: "(13+4)-(12+1)", want: "((13+4)-(12+1))"},
		{name: "nested parens", source: "(13+(2+2))-((6+6)+1)", want: "((13+(2+2))-((6+6)+1))"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expr := parseExpr(t, tc.source)
			if got := expr.Root().String(); got != tc.want {
				t.Errorf("Parse(%q).Root() = %s, want %s", tc.source, got, tc.want)
			}
		})
	}
}

func TestParserSingleOperand(t *testing.T) {
	expr := parseExpr(t, "5")

	// A lone integer must come back as the literal itself, not wrapped
	// in a half-filled binary node.
	lit, ok := expr.Root().(*types.IntegerLiteral)
	if !ok {
		t.Fatalf("Parse(\"5\").Root() is %T, want *types.IntegerLiteral", expr.Root())
	}
	if lit.Value != 5 {
		t.Errorf("literal value = %d, want 5", lit.Value)
	}
}

func TestParserBinaryNodeShape(t *testing.T) {
	expr := parseExpr(t, "12+3")

	bin, ok := expr.Root().(*types.BinaryOperation)
	if !ok {
		t.Fatalf("root is %T, want *types.BinaryOperation", expr.Root())
	}
	if bin.Op != types.Addition {
		t.Errorf("op = %s, want +", bin.Op)
	}
	if bin.Left == nil || bin.Right == nil {
		t.Fatal("binary node has a nil child")
	}

	left, ok := bin.Left.(*types.IntegerLiteral)
	if !ok || left.Value != 12 {
		t.Errorf("left = %v, want literal 12", bin.Left)
	}
	right, ok := bin.Right.(*types.IntegerLiteral)
	if !ok || right.Value != 3 {
		t.Errorf("right = %v, want literal 3", bin.Right)
	}
}

func TestParserExpressionMetadata(t *testing.T) {
	source := "(13+4)-(12+1)"
	expr := parseExpr(t, source)

	if expr.Source() != source {
		t.Errorf("Source() = %q, want %q", expr.Source(), source)
	}
	if expr.String() != source {
		t.Errorf("String() = %q, want %q", expr.String(), source)
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   types.ErrorCode
	}{
		{name: "empty input", source: "", code: types.ErrMissingOperand},
		{name: "lone operator", source: "+", code: types.ErrMissingOperand},
		{name: "missing right operand", source: "1+", code: types.ErrMissingOperand},
		{name: "missing left operand", source: "+1", code: types.ErrMissingOperand},
		{name: "double operator", source: "1++2", code: types.ErrMissingOperand},
		{name: "empty parens", source: "()", code: types.ErrMissingOperand},
		{name: "unclosed paren", source: "(1+2", code: types.ErrUnmatchedParen},
		{name: "stray close paren", source: "1+2)", code: types.ErrUnmatchedParen},
		{name: "leading close paren", source: ")1", code: types.ErrUnmatchedParen},
		{name: "adjacent operands", source: "(1)(2)", code: types.ErrSyntaxError},
		{name: "literal overflows int64", source: "9223372036854775808", code: types.ErrNumberOutOfRange},
		{name: "invalid character surfaces from lexer", source: "1+a", code: types.ErrInvalidCharacter},
		{name: "invalid character inside parens", source: "(1+2a)", code: types.ErrInvalidCharacter},
		{name: "invalid character after group", source: "(1+2)a", code: types.ErrInvalidCharacter},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expectError(t, tc.source, tc.code)
		})
	}
}

func TestParserErrorKinds(t *testing.T) {
	aerr := expectError(t, "(1+2", types.ErrUnmatchedParen)
	if aerr.Kind() != types.KindMalformedExpression {
		t.Errorf("kind = %s, want MalformedExpression", aerr.Kind())
	}

	aerr = expectError(t, "1+a", types.ErrInvalidCharacter)
	if aerr.Kind() != types.KindInvalidCharacter {
		t.Errorf("kind = %s, want InvalidCharacter", aerr.Kind())
	}
}

// An invalid character between a sub-expression and its closing paren
// must keep its lexer identity, not degrade into a paren mismatch.
func TestParserInvalidCharacterInsideParens(t *testing.T) {
	aerr := expectError(t, "(1+2a)", types.ErrInvalidCharacter)
	if aerr.Kind() != types.KindInvalidCharacter {
		t.Errorf("kind = %s, want InvalidCharacter", aerr.Kind())
	}
	if aerr.Position != 4 {
		t.Errorf("position = %d, want 4", aerr.Position)
	}
	if aerr.Token != "a" {
		t.Errorf("token = %q, want %q", aerr.Token, "a")
	}
}

func TestParserUnclosedParenPosition(t *testing.T) {
	// The unmatched-paren error points at the '(' left hanging open.
	aerr := expectError(t, "1+(2+3", types.ErrUnmatchedParen)
	if aerr.Position != 2 {
		t.Errorf("position = %d, want 2", aerr.Position)
	}
}

func TestParserMaxDepth(t *testing.T) {
	_, err := parser.Compile("((((1))))", parser.WithMaxDepth(3))
	var aerr *types.Error
	if !errors.As(err, &aerr) || aerr.Code != types.ErrDepthExceeded {
		t.Fatalf("expected %s, got %v", types.ErrDepthExceeded, err)
	}

	if _, err := parser.Compile("((((1))))", parser.WithMaxDepth(4)); err != nil {
		t.Fatalf("depth 4 should fit in limit 4: %v", err)
	}
}

func TestParserInt64Boundaries(t *testing.T) {
	expr := parseExpr(t, "9223372036854775807")
	lit, ok := expr.Root().(*types.IntegerLiteral)
	if !ok || lit.Value != 9223372036854775807 {
		t.Fatalf("max int64 literal parsed as %v", expr.Root())
	}
}
