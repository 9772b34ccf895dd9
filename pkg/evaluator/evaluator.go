// Package evaluator implements the GoAbacus expression evaluation engine.
//
// The evaluator receives a compiled expression tree from the parser and
// reduces it to an int64 result. It supports:
//   - Checked int64 arithmetic (overflow is an error, never a wrap)
//   - Optional compilation caching for the evaluate-from-source path
//   - Timeout and cancellation via context.Context
//   - Structured debug logging via log/slog
//
// # Example
//
//	eval := evaluator.New()
//	result, err := eval.Eval(ctx, expr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Evaluation is a pure function of the expression tree: an Evaluator has
// no per-call mutable state and is safe for concurrent use.
package evaluator

import (
	"context"
	"log/slog"
	"time"

	"github.com/sandrolain/goabacus/pkg/cache"
	"github.com/sandrolain/goabacus/pkg/parser"
	"github.com/sandrolain/goabacus/pkg/types"
)

// Evaluator evaluates compiled arithmetic expressions.
type Evaluator struct {
	opts   EvalOptions
	logger *slog.Logger
	cache  *cache.Cache // non-nil when Caching is enabled
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Caching enables expression compilation caching on the EvalSource
	// path. When true, compiled expressions are cached by source string.
	// The default cache holds up to 256 entries with LRU eviction.
	Caching bool
	// CacheSize sets the maximum number of cached expressions.
	// Only used when Caching is true and no explicit Cache is provided.
	// Defaults to 256.
	CacheSize int
	// Cache is a custom expression cache. If non-nil, Caching is
	// implicitly enabled.
	Cache *cache.Cache
	// MaxDepth limits tree recursion depth.
	MaxDepth int
	// Timeout sets evaluation timeout.
	Timeout time.Duration
	// Debug enables per-node debug logging.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
}

// New creates a new Evaluator with default options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		Caching:  false, // Disabled by default
		MaxDepth: 10000,
		Timeout:  30 * time.Second,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	// Initialise expression cache when caching is enabled.
	var c *cache.Cache
	if options.Cache != nil {
		c = options.Cache
	} else if options.Caching {
		size := options.CacheSize
		if size <= 0 {
			size = 256
		}
		c = cache.New(size)
	}

	return &Evaluator{
		opts:   options,
		logger: options.Logger,
		cache:  c,
	}
}

// Cache returns the expression cache, or nil if caching is disabled.
func (e *Evaluator) Cache() *cache.Cache {
	return e.cache
}

// Eval evaluates a compiled expression and returns its int64 result.
func (e *Evaluator) Eval(ctx context.Context, expr *types.Expression) (int64, error) {
	if expr == nil || expr.Root() == nil {
		return 0, types.NewError(types.ErrInvalidExpression, "Evaluation requires a compiled expression", -1)
	}

	// Apply timeout if configured
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	result, err := e.evalNode(ctx, expr.Root(), 0)
	if err != nil {
		return 0, err
	}

	if e.opts.Debug {
		e.logger.DebugContext(ctx, "evaluated expression",
			slog.String("source", expr.Source()),
			slog.Int64("result", result))
	}

	return result, nil
}

// EvalSource compiles and evaluates an expression in a single call.
// When caching is enabled the compiled tree is reused across calls with
// the same source string.
func (e *Evaluator) EvalSource(ctx context.Context, source string) (int64, error) {
	expr, err := e.compile(source)
	if err != nil {
		return 0, err
	}
	return e.Eval(ctx, expr)
}

// compile parses source, going through the cache when one is configured.
func (e *Evaluator) compile(source string) (*types.Expression, error) {
	if e.cache == nil {
		return parser.Compile(source)
	}
	return e.cache.GetOrCompile(source, func() (*types.Expression, error) {
		return parser.Compile(source)
	})
}

// EvalOption configures evaluation behavior.
type EvalOption func(*EvalOptions)

// WithCaching enables or disables expression compilation caching.
// When enabled, a default LRU cache of 256 entries is created.
// To control the cache size use WithCacheSize; to supply your own cache
// use WithCache.
func WithCaching(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Caching = enabled
	}
}

// WithCacheSize sets the maximum number of cached expressions.
// Only effective when combined with WithCaching(true).
func WithCacheSize(size int) EvalOption {
	return func(opts *EvalOptions) {
		opts.CacheSize = size
	}
}

// WithCache attaches an external expression cache.
// The evaluator will use this cache regardless of the Caching flag.
func WithCache(c *cache.Cache) EvalOption {
	return func(opts *EvalOptions) {
		opts.Cache = c
	}
}

// WithTimeout sets the evaluation timeout.
func WithTimeout(timeout time.Duration) EvalOption {
	return func(opts *EvalOptions) {
		opts.Timeout = timeout
	}
}

// WithDebug enables or disables debug logging.
func WithDebug(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Debug = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(opts *EvalOptions) {
		opts.Logger = logger
	}
}

// WithMaxDepth sets the maximum recursion depth.
func WithMaxDepth(depth int) EvalOption {
	return func(opts *EvalOptions) {
		opts.MaxDepth = depth
	}
}
