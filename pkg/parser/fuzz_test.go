package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sandrolain/goabacus/pkg/parser"
	"github.com/sandrolain/goabacus/pkg/types"
)

// FuzzLex checks the lexer's structural guarantees on arbitrary input:
// it either fails with a structured error or returns a token sequence
// whose concatenated values reproduce the input exactly.
func FuzzLex(f *testing.F) {
	f.Add("")
	f.Add("5")
	f.Add("12+3")
	f.Add("(13+4)-(12+1)")
	f.Add("1+a")
	f.Add("1 + 2")
	f.Add("((((((((1))))))))")

	f.Fuzz(func(t *testing.T, input string) {
		tokens, err := parser.Lex(input)
		if err != nil {
			var aerr *types.Error
			if !errors.As(err, &aerr) {
				t.Fatalf("Lex(%q): unstructured error %T: %v", input, err, err)
			}
			if aerr.Code != types.ErrInvalidCharacter {
				t.Fatalf("Lex(%q): unexpected code %s", input, aerr.Code)
			}
			return
		}

		var sb strings.Builder
		for _, tok := range tokens {
			if tok.Type == parser.TokenEOF || tok.Type == parser.TokenError {
				t.Fatalf("Lex(%q): sentinel token %v in materialized sequence", input, tok)
			}
			sb.WriteString(tok.Value)
		}
		if sb.String() != input {
			t.Fatalf("Lex(%q): round trip produced %q", input, sb.String())
		}
	})
}

// FuzzParse checks that the parser never panics, never returns a
// half-built tree, and only fails with structured errors.
func FuzzParse(f *testing.F) {
	f.Add("5")
	f.Add("1+2+3")
	f.Add("(13+(2+2))-((6+6)+1)")
	f.Add("(1+2")
	f.Add("()")
	f.Add(")(")
	f.Add("1++2")
	f.Add("(1+2a)")
	f.Add("9223372036854775808")

	f.Fuzz(func(t *testing.T, input string) {
		expr, err := parser.Parse(input)
		if err != nil {
			var aerr *types.Error
			if !errors.As(err, &aerr) {
				t.Fatalf("Parse(%q): unstructured error %T: %v", input, err, err)
			}
			if expr != nil {
				t.Fatalf("Parse(%q): returned both a tree and an error", input)
			}
			return
		}

		root := expr.Root()
		if root == nil {
			t.Fatalf("Parse(%q): nil root without error", input)
		}
		checkComplete(t, input, root)
	})
}

// checkComplete walks the tree asserting every binary node has both
// children populated.
func checkComplete(t *testing.T, input string, node types.Expr) {
	t.Helper()
	bin, ok := node.(*types.BinaryOperation)
	if !ok {
		return
	}
	if bin.Left == nil || bin.Right == nil {
		t.Fatalf("Parse(%q): binary node with nil child", input)
	}
	checkComplete(t, input, bin.Left)
	checkComplete(t, input, bin.Right)
}
