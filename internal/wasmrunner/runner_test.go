package wasmrunner_test

import (
	"context"
	"os"
	"testing"

	"github.com/sandrolain/goabacus"
	"github.com/sandrolain/goabacus/internal/wasmrunner"
)

// wasmBinaryPath locates the wasip1 build of the engine, or skips the
// test when it has not been built:
//
//	GOOS=wasip1 GOARCH=wasm go build -o build/goabacus.wasm ./cmd/wasm/wasi/
//	GOABACUS_WASM=$PWD/build/goabacus.wasm go test ./internal/wasmrunner/
func wasmBinaryPath(t *testing.T) string {
	t.Helper()

	path := os.Getenv("GOABACUS_WASM")
	if path == "" {
		path = "../../build/goabacus.wasm"
	}
	if _, err := os.Stat(path); err != nil {
		t.Skipf("wasm binary not found at %s; build it first (see test doc)", path)
	}
	return path
}

func newRunner(t *testing.T) *wasmrunner.Runner {
	t.Helper()

	ctx := context.Background()
	r, err := wasmrunner.New(ctx, wasmBinaryPath(t))
	if err != nil {
		t.Fatalf("load wasm module: %v", err)
	}
	t.Cleanup(func() { _ = r.Close(ctx) })
	return r
}

// The native and WebAssembly builds must agree on every expression.
func TestNativeWasmAgreement(t *testing.T) {
	r := newRunner(t)
	ctx := context.Background()

	expressions := []string{
		"5",
		"12+3",
		"1+2+3",
		"(13+4)-(12+1)",
		"(13+(2+2))-((6+6)+1)",
		"3-5",
		"100-(40+2)",
	}

	for _, source := range expressions {
		t.Run(source, func(t *testing.T) {
			native, err := goabacus.Eval(source)
			if err != nil {
				t.Fatalf("native Eval(%q): %v", source, err)
			}

			wasm, err := r.Eval(ctx, source)
			if err != nil {
				t.Fatalf("wasm Eval(%q): %v", source, err)
			}

			if native != wasm {
				t.Errorf("Eval(%q): native = %d, wasm = %d", source, native, wasm)
			}
		})
	}
}

func TestWasmErrorsPropagate(t *testing.T) {
	r := newRunner(t)
	ctx := context.Background()

	for _, source := range []string{"1+a", "(1+2", ""} {
		t.Run(source, func(t *testing.T) {
			if _, err := r.Eval(ctx, source); err == nil {
				t.Errorf("wasm Eval(%q): expected error", source)
			}
		})
	}
}
