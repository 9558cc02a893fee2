package medcalc

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/medcalc/pkg/adapters/memory"
	"github.com/aretw0/medcalc/pkg/calculators"
	"github.com/aretw0/medcalc/pkg/catalog"
	"github.com/aretw0/medcalc/pkg/dispatch"
	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/aretw0/medcalc/pkg/ports"
	"github.com/aretw0/medcalc/pkg/postprocess"
	"github.com/aretw0/medcalc/pkg/registry"
)

// Service is the high-level entry point for the medcalc library.
// It owns the calculator registry and the dispatcher and exposes the
// list/get/run operations transports are built on.
type Service struct {
	source   ports.MetadataSource
	resolver ports.Resolver
	pipeline *postprocess.Pipeline
	hooks    domain.DispatchHooks
	logger   *slog.Logger
	onSkip   func(domain.SkippedEntry)

	dispatcher *dispatch.Dispatcher

	once     sync.Once
	registry *registry.Registry
	buildErr error
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithSource injects the metadata source. Defaults to the bundled catalog.
func WithSource(src ports.MetadataSource) Option {
	return func(s *Service) {
		s.source = src
	}
}

// WithResolver injects the implementation resolver. Defaults to the bundled calculators.
func WithResolver(r ports.Resolver) Option {
	return func(s *Service) {
		s.resolver = r
	}
}

// WithPostProcessing replaces the default post-processing pipeline.
func WithPostProcessing(p *postprocess.Pipeline) Option {
	return func(s *Service) {
		s.pipeline = p
	}
}

// WithDispatchHooks registers observability hooks.
func WithDispatchHooks(hooks domain.DispatchHooks) Option {
	return func(s *Service) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithSkipReporter receives metadata entries excluded from the catalog.
// Without it, incomplete entries are dropped silently.
func WithSkipReporter(fn func(domain.SkippedEntry)) Option {
	return func(s *Service) {
		s.onSkip = fn
	}
}

// New initializes a Service. The registry is built on first use.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}

	if s.source == nil {
		s.source = memory.NewSource(calculators.PathIndex, calculators.FieldIndex)
	}
	if s.resolver == nil {
		s.resolver = calculators.NewLibrary()
	}
	if s.pipeline == nil {
		s.pipeline = postprocess.Default()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s.dispatcher = dispatch.New(s.resolver,
		dispatch.WithPostProcessor(s.pipeline),
		dispatch.WithHooks(s.hooks),
		dispatch.WithLogger(s.logger),
	)
	return s
}

// Registry returns the calculator registry, building it on the first call.
// A build failure is returned to every caller; no partial registry is exposed.
func (s *Service) Registry(ctx context.Context) (*registry.Registry, error) {
	s.once.Do(func() {
		s.registry, s.buildErr = s.build(context.WithoutCancel(ctx))
	})
	return s.registry, s.buildErr
}

func (s *Service) build(ctx context.Context) (*registry.Registry, error) {
	meta, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load calculator metadata", "error", err)
		return nil, err
	}

	var opts []catalog.BuildOption
	if s.onSkip != nil {
		opts = append(opts, catalog.WithSkipReporter(s.onSkip))
	}
	defs, err := catalog.Build(meta, opts...)
	if err != nil {
		s.logger.Error("failed to build calculator catalog", "error", err)
		return nil, err
	}

	s.logger.Info("calculator registry built", "calculators", len(defs))
	return registry.New(defs), nil
}

// Definitions returns every calculator definition in catalog order.
func (s *Service) Definitions(ctx context.Context) ([]domain.CalculatorDefinition, error) {
	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.List(), nil
}

// List returns a summary of every calculator.
func (s *Service) List(ctx context.Context) ([]domain.Summary, error) {
	defs, err := s.Definitions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Summary, len(defs))
	for i, d := range defs {
		out[i] = d.Summary()
	}
	return out, nil
}

// Get returns the detail view of one calculator or a *domain.NotFoundError.
func (s *Service) Get(ctx context.Context, slug string) (domain.Detail, error) {
	reg, err := s.Registry(ctx)
	if err != nil {
		return domain.Detail{}, err
	}
	def, err := reg.GetBySlug(slug)
	if err != nil {
		return domain.Detail{}, err
	}
	return def.Detail(), nil
}

// Run executes the calculator behind slug with payload.
// Client errors (empty payload, unknown slug, missing input) can be told apart
// from internal failures with domain.IsClientError.
func (s *Service) Run(ctx context.Context, slug string, payload map[string]any) (domain.Response, error) {
	if len(payload) == 0 {
		return nil, domain.ErrEmptyPayload
	}

	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	def, err := reg.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.dispatcher.Execute(ctx, def, payload)
}
