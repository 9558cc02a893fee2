package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/aretw0/medcalc/pkg/ports"
	"golang.org/x/sync/singleflight"
)

// PostProcessor derives supplementary response fields from a calculator's
// translated inputs and raw result.
type PostProcessor interface {
	Apply(def domain.CalculatorDefinition, inputs, raw map[string]any) (map[string]any, error)
}

type cacheKey struct {
	module   string
	function string
}

// Dispatcher resolves definitions to implementations and runs them.
// Resolved implementations are cached for the lifetime of the Dispatcher;
// failed resolutions are not cached.
type Dispatcher struct {
	resolver ports.Resolver
	post     PostProcessor
	hooks    domain.DispatchHooks
	logger   *slog.Logger

	cache sync.Map // cacheKey -> domain.CalculatorFunc
	group singleflight.Group
}

// Option defines a functional option for configuring the Dispatcher.
type Option func(*Dispatcher)

// WithPostProcessor sets the pipeline applied to every successful result.
func WithPostProcessor(p PostProcessor) Option {
	return func(d *Dispatcher) {
		d.post = p
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.DispatchHooks) Option {
	return func(d *Dispatcher) {
		d.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// New creates a Dispatcher backed by resolver.
func New(resolver ports.Resolver, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		resolver: resolver,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Execute translates raw inputs, runs the calculator behind def and assembles
// the normalized response, post-processor fields taking precedence.
func (d *Dispatcher) Execute(ctx context.Context, def domain.CalculatorDefinition, raw map[string]any) (domain.Response, error) {
	start := time.Now()
	resp, err := d.execute(ctx, def, raw)

	if d.hooks.OnExecute != nil {
		d.hooks.OnExecute(ctx, &domain.ExecuteEvent{
			Slug:     def.Slug,
			Duration: time.Since(start),
			Outcome:  classify(err),
			Err:      err,
		})
	}
	return resp, err
}

func (d *Dispatcher) execute(ctx context.Context, def domain.CalculatorDefinition, raw map[string]any) (domain.Response, error) {
	inputs := def.TranslateInputs(raw)

	fn, err := d.resolve(ctx, def)
	if err != nil {
		return nil, err
	}

	out, err := invoke(ctx, fn, inputs)
	if err != nil {
		d.logger.Debug("calculator failed", "slug", def.Slug, "error", err)
		return nil, &domain.ExecutionError{Slug: def.Slug, Err: err}
	}

	result, ok := asResult(out)
	if !ok {
		return nil, &domain.ContractViolationError{Slug: def.Slug, Got: fmt.Sprintf("%T", out)}
	}

	resp := domain.NewResponse(def, result)

	if d.post != nil {
		extra, err := applySafely(d.post, def, inputs, result)
		if err != nil {
			d.logger.Debug("post-processor failed", "slug", def.Slug, "error", err)
			return nil, &domain.ExecutionError{Slug: def.Slug, Err: err}
		}
		resp.Merge(extra)
	}

	return resp, nil
}

// resolve consults the cache first. Concurrent misses on the same key share a
// single lookup.
func (d *Dispatcher) resolve(ctx context.Context, def domain.CalculatorDefinition) (domain.CalculatorFunc, error) {
	key := cacheKey{module: def.ModulePath, function: def.FunctionName}

	if fn, ok := d.cache.Load(key); ok {
		d.emitResolve(ctx, key, true, nil)
		return fn.(domain.CalculatorFunc), nil
	}

	v, err, _ := d.group.Do(key.module+"\x00"+key.function, func() (any, error) {
		if fn, ok := d.cache.Load(key); ok {
			return fn, nil
		}
		fn, err := d.resolver.Resolve(key.module, key.function)
		if err != nil {
			return nil, err
		}
		d.cache.Store(key, fn)
		return fn, nil
	})
	d.emitResolve(ctx, key, false, err)
	if err != nil {
		return nil, err
	}
	return v.(domain.CalculatorFunc), nil
}

func (d *Dispatcher) emitResolve(ctx context.Context, key cacheKey, hit bool, err error) {
	if d.hooks.OnResolve == nil {
		return
	}
	d.hooks.OnResolve(ctx, &domain.ResolveEvent{
		Module:   key.module,
		Function: key.function,
		CacheHit: hit,
		Err:      err,
	})
}

func invoke(ctx context.Context, fn domain.CalculatorFunc, inputs map[string]any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx, inputs)
}

// asResult accepts any map keyed by strings, including named map types such
// as domain.Response.
func asResult(out any) (map[string]any, bool) {
	if m, ok := out.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

func applySafely(p PostProcessor, def domain.CalculatorDefinition, inputs, raw map[string]any) (extra map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("post-processor panic: %v", r)
		}
	}()
	return p.Apply(def, inputs, raw)
}

func classify(err error) domain.Outcome {
	switch {
	case err == nil:
		return domain.OutcomeOK
	case errors.Is(err, domain.ErrMissingInput):
		return domain.OutcomeMissingInput
	case errors.Is(err, domain.ErrModuleNotFound), errors.Is(err, domain.ErrFunctionNotFound):
		return domain.OutcomeResolutionFailure
	case errors.Is(err, domain.ErrContractViolation):
		return domain.OutcomeContractViolation
	}
	return domain.OutcomeError
}
