package turing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// Engine is the high-level entry point for the turing library.
// It binds a machine definition to the internal runtime and provides a simplified API for consumers.
// An Engine is safe for concurrent use; every run starts from a fresh configuration.
type Engine struct {
	runtime     *runtime.Engine
	def         *domain.Definition
	runtimeOpts []runtime.EngineOption
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	cache       ports.ResultCache
	fingerprint string
	workers     int
	Name        string
}

var _ ports.Engine = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStepLimit bounds the number of transitions of a single run.
// Zero (the default) keeps runs unbounded.
func WithStepLimit(n int) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithStepLimit(n))
	}
}

// WithWorkers sets how many inputs RunBatch simulates in parallel (default: 1).
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithCache stores results of runs that halted on their own and serves repeated inputs from it.
func WithCache(cache ports.ResultCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithName sets a display name for the machine (default: the file name for Load).
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New binds a parsed definition to a new Engine.
func New(def *domain.Definition, opts ...Option) (*Engine, error) {
	if def == nil {
		return nil, errors.New("definition is required")
	}

	eng := &Engine{def: def, workers: 1}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.DiscardHandler)
	}
	if eng.workers < 1 {
		eng.workers = 1
	}
	if eng.cache != nil {
		eng.fingerprint = ports.Fingerprint(def)
	}

	rtOpts := append([]runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	}, eng.runtimeOpts...)
	eng.runtime = runtime.NewEngine(rtOpts...)

	return eng, nil
}

// Load reads a definition file and binds it to a new Engine.
// Files ending in .yaml, .yml or .json are read as structured documents; anything else uses the line format.
func Load(path string, opts ...Option) (*Engine, error) {
	def, err := compiler.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load definition: %w", err)
	}
	return New(def, append([]Option{WithName(displayName(path))}, opts...)...)
}

// Definition returns the machine the engine runs.
func (e *Engine) Definition() *domain.Definition {
	return e.def
}

// Recognize runs the machine as a recognizer and returns its verdict.
func (e *Engine) Recognize(ctx context.Context, input string) (domain.Verdict, error) {
	res := e.Run(ctx, domain.ModeRecognizer, input)
	if res.Err != nil {
		return "", res.Err
	}
	return domain.Verdict(res.Output), nil
}

// Transduce runs the machine as a transducer and returns the tape from the head rightwards.
func (e *Engine) Transduce(ctx context.Context, input string) (string, error) {
	res := e.Run(ctx, domain.ModeTransducer, input)
	if res.Err != nil {
		return "", res.Err
	}
	return res.Output, nil
}

// Run executes a single input under the halting policy of mode.
func (e *Engine) Run(ctx context.Context, mode domain.Mode, input string) domain.Result {
	if e.cache == nil {
		return e.runtime.Run(ctx, e.def, mode, input)
	}

	key := ports.CacheKey(e.fingerprint, mode, input)
	if res, err := e.cache.Get(ctx, key); err == nil {
		e.logger.Debug("Cache hit", "mode", mode, "key", key)
		res.Input = input
		return res
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		e.logger.Warn("Cache lookup failed", "error", err)
	}

	res := e.runtime.Run(ctx, e.def, mode, input)
	if res.Halted() {
		if err := e.cache.Put(ctx, key, res); err != nil {
			e.logger.Warn("Cache store failed", "error", err)
		}
	}
	return res
}

// RunBatch executes inputs and returns one result per input, in input order.
// With WithWorkers(n > 1), up to n inputs are simulated at once.
func (e *Engine) RunBatch(ctx context.Context, mode domain.Mode, inputs []string) []domain.Result {
	results := make([]domain.Result, len(inputs))

	if e.workers <= 1 || len(inputs) <= 1 {
		for i, in := range inputs {
			results[i] = e.Run(ctx, mode, in)
		}
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, in := range inputs {
		g.Go(func() error {
			results[i] = e.Run(gctx, mode, in)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func displayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
