//go:build js && wasm

// Command goabacus-wasm-js is the WebAssembly entrypoint for browser and
// Node.js.
//
// It exposes a global `goabacus` object with the following API:
//
//	goabacus.version()        → string
//	goabacus.eval(expr)       → number                  (throws on error)
//	goabacus.compile(expr)    → { eval() → number }     (throws on error)
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o goabacus.wasm ./cmd/wasm/js/
//
// Usage in Node.js:
//
//	require('./wasm_exec.js')
//	// ... instantiate goabacus.wasm ...
//	console.log(goabacus.eval('(13+4)-(12+1)')) // 4
package main

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/sandrolain/goabacus"
	"github.com/sandrolain/goabacus/pkg/evaluator"
)

// jsThrow panics with a JS Error so the caller receives a thrown exception.
func jsThrow(msg string) {
	js.Global().Get("Error").New(msg)
	panic(msg)
}

// jsEval implements goabacus.eval(expr) → number.
func jsEval(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		jsThrow("goabacus.eval requires 1 argument: expression (string)")
	}
	source := args[0].String()

	result, err := goabacus.EvalWithContext(context.Background(), source)
	if err != nil {
		jsThrow(fmt.Sprintf("goabacus.eval: %v", err))
	}
	return result
}

// jsCompile implements goabacus.compile(expr) → { eval() → number }.
func jsCompile(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		jsThrow("goabacus.compile requires 1 argument: expression (string)")
	}
	source := args[0].String()

	expr, err := goabacus.Compile(source)
	if err != nil {
		jsThrow(fmt.Sprintf("goabacus.compile: %v", err))
	}

	ev := evaluator.New()

	evalFn := js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
		r, e := ev.Eval(context.Background(), expr)
		if e != nil {
			jsThrow(fmt.Sprintf("compiled.eval: %v", e))
		}
		return r
	})

	return js.ValueOf(map[string]interface{}{"eval": evalFn})
}

func main() {
	api := map[string]interface{}{
		"eval":    js.FuncOf(jsEval),
		"compile": js.FuncOf(jsCompile),
		"version": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			return goabacus.Version()
		}),
	}
	js.Global().Set("goabacus", js.ValueOf(api))

	// Block forever — the JS event loop owns execution from here.
	select {}
}
