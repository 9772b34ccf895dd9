// Command abacus is a thin CLI around the GoAbacus engine.
//
// One-shot mode evaluates the expression given as the single argument
// and exits non-zero on failure:
//
//	abacus '(13+4)-(12+1)'
//	`(` `13` `+` `4` `)` `-` `(` `12` `+` `1` `)`
//	(13+4)-(12+1) = 4
//
// Without arguments it reads one expression per line from stdin,
// printing a prompt when stdin is a terminal. The engine itself never
// prints; all output formatting lives here.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sandrolain/goabacus/pkg/evaluator"
	"github.com/sandrolain/goabacus/pkg/parser"
)

func main() {
	switch len(os.Args) {
	case 1:
		os.Exit(repl())
	case 2:
		os.Exit(oneShot(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "usage: abacus [expression]")
		os.Exit(2)
	}
}

// render evaluates source and prints the diagnostic token stream
// followed by "source = result". Returns a non-nil error on any failure.
func render(ctx context.Context, eval *evaluator.Evaluator, source string) error {
	tokens, err := parser.Lex(source)
	if err != nil {
		return err
	}

	result, err := eval.EvalSource(ctx, source)
	if err != nil {
		return err
	}

	fmt.Println(tokens.String())
	fmt.Printf("%s = %d\n", source, result)
	return nil
}

func oneShot(source string) int {
	eval := evaluator.New()
	if err := render(context.Background(), eval, source); err != nil {
		fmt.Fprintln(os.Stderr, "abacus:", err)
		return 1
	}
	return 0
}

func repl() int {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	// The REPL re-evaluates whatever the user retypes; cache compilations.
	eval := evaluator.New(evaluator.WithCaching(true))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := render(context.Background(), eval, line); err != nil {
			fmt.Fprintln(os.Stderr, "abacus:", err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "abacus:", err)
		return 1
	}
	return 0
}
