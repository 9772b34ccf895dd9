//go:build wasip1

// Command goabacus-wasm-wasi is the WASI (wasip1) entrypoint for use from
// any language that supports the WebAssembly System Interface.
//
// Protocol: single JSON object on stdin → single JSON object on stdout.
//
//	stdin:  { "expression": "(13+4)-(12+1)" }
//	stdout: { "result": 4 }                          on success
//	        { "error": "<message>", "code": "S0201" } on failure (exit code 1)
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o goabacus.wasm ./cmd/wasm/wasi/
//
// Usage with wasmtime CLI:
//
//	echo '{"expression":"(13+4)-(12+1)"}' | wasmtime goabacus.wasm
//
// The internal/wasmrunner package drives this binary from Go via wazero.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/sandrolain/goabacus"
	"github.com/sandrolain/goabacus/pkg/types"
)

type request struct {
	Expression string `json:"expression"`
}

type response struct {
	Result *int64 `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

func writeResponse(r response, exitCode int) {
	_ = json.NewEncoder(os.Stdout).Encode(r)
	os.Exit(exitCode)
}

func main() {
	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResponse(response{Error: "invalid request JSON: " + err.Error()}, 1)
	}

	result, err := goabacus.EvalWithContext(context.Background(), req.Expression)
	if err != nil {
		resp := response{Error: err.Error()}
		var aerr *types.Error
		if errors.As(err, &aerr) {
			resp.Code = string(aerr.Code)
		}
		writeResponse(resp, 1)
	}

	writeResponse(response{Result: &result}, 0)
}
