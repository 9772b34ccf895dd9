// Package wasmrunner drives the wasip1 build of the engine from Go.
//
// It embeds a wazero runtime, instantiates the goabacus.wasm module with
// WASI support and speaks its JSON stdin/stdout protocol. The package
// exists so the native and WebAssembly builds of the engine can be run
// side by side and compared on the same inputs.
package wasmrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"
)

// request mirrors the wasip1 command's stdin protocol.
type request struct {
	Expression string `json:"expression"`
}

// response mirrors the wasip1 command's stdout protocol.
type response struct {
	Result *int64 `json:"result"`
	Error  string `json:"error"`
	Code   string `json:"code"`
}

// Runner holds a compiled WebAssembly module ready for repeated runs.
//
// Each Eval call instantiates a fresh module instance (the wasip1
// command runs to completion per request), so a Runner is safe for
// sequential reuse. Close releases the runtime.
type Runner struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
}

// New reads the wasm binary at path and prepares it for execution.
func New(ctx context.Context, path string) (*Runner, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wasm binary: %w", err)
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)

	compiled, err := rt.CompileModule(ctx, code)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("compile wasm module: %w", err)
	}

	return &Runner{runtime: rt, compiled: compiled}, nil
}

// Eval sends one expression through the module and decodes the reply.
// Engine-level failures come back as errors carrying the engine's
// message and code, exactly as the native API would report them.
func (r *Runner) Eval(ctx context.Context, expression string) (int64, error) {
	in, err := json.Marshal(request{Expression: expression})
	if err != nil {
		return 0, err
	}

	var stdout, stderr bytes.Buffer
	cfg := wazero.NewModuleConfig().
		WithName(""). // anonymous: allows concurrent instantiations
		WithStdin(bytes.NewReader(in)).
		WithStdout(&stdout).
		WithStderr(&stderr).
		WithArgs("goabacus.wasm")

	mod, runErr := r.runtime.InstantiateModule(ctx, r.compiled, cfg)
	if mod != nil {
		_ = mod.Close(ctx)
	}

	// The command exits 1 on engine errors; the JSON reply still holds
	// the details, so a clean exit error is not itself a failure here.
	if runErr != nil {
		var exitErr *sys.ExitError
		if !errors.As(runErr, &exitErr) {
			return 0, fmt.Errorf("run wasm module: %w", runErr)
		}
	}

	var resp response
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return 0, fmt.Errorf("decode wasm reply %q: %w", stdout.String(), err)
	}

	if resp.Error != "" {
		if resp.Code != "" {
			return 0, fmt.Errorf("wasm engine: [%s] %s", resp.Code, resp.Error)
		}
		return 0, fmt.Errorf("wasm engine: %s", resp.Error)
	}
	if resp.Result == nil {
		return 0, fmt.Errorf("wasm engine: reply has neither result nor error")
	}
	return *resp.Result, nil
}

// Close releases the runtime and all compiled modules.
func (r *Runner) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}
