package cli

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/medcalc"
	"github.com/aretw0/medcalc/internal/config"
	"github.com/aretw0/medcalc/pkg/adapters/file"
	"github.com/aretw0/medcalc/pkg/adapters/memory"
	"github.com/aretw0/medcalc/pkg/adapters/redis"
	"github.com/aretw0/medcalc/pkg/calculators"
	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/aretw0/medcalc/pkg/library"
	"github.com/aretw0/medcalc/pkg/observability"
	"github.com/aretw0/medcalc/pkg/ports"
	"github.com/aretw0/medcalc/pkg/postprocess"
)

// Runtime bundles the service with the collaborators the commands inspect.
type Runtime struct {
	Service  *medcalc.Service
	Library  *library.Library
	Pipeline *postprocess.Pipeline
	Metrics  *observability.Metrics

	mu      sync.Mutex
	skipped []domain.SkippedEntry
	closer  func() error
}

// Skipped returns the metadata entries excluded while building the catalog.
func (r *Runtime) Skipped() []domain.SkippedEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.SkippedEntry(nil), r.skipped...)
}

// Close releases the metadata source (the Redis client, when configured).
func (r *Runtime) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}

// NewRuntime initializes the service with standard CLI conventions:
// the configured metadata source, the bundled calculators, the default
// post-processors and Prometheus hooks.
func NewRuntime(cfg config.Config, logger *slog.Logger) (*Runtime, error) {
	src, closer, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Library:  calculators.NewLibrary(),
		Pipeline: postprocess.Default(),
		Metrics:  observability.NewMetrics(logger),
		closer:   closer,
	}

	rt.Service = medcalc.New(
		medcalc.WithSource(src),
		medcalc.WithResolver(rt.Library),
		medcalc.WithPostProcessing(rt.Pipeline),
		medcalc.WithDispatchHooks(rt.Metrics.Hooks()),
		medcalc.WithLogger(logger),
		medcalc.WithSkipReporter(func(e domain.SkippedEntry) {
			logger.Warn("metadata entry skipped", "id", e.ID, "missing", e.Missing)
			rt.mu.Lock()
			rt.skipped = append(rt.skipped, e)
			rt.mu.Unlock()
		}),
	)
	return rt, nil
}

func newSource(cfg config.Config) (ports.MetadataSource, func() error, error) {
	switch cfg.Metadata.Source {
	case config.SourceEmbedded, "":
		return memory.NewSource(calculators.PathIndex, calculators.FieldIndex), nil, nil
	case config.SourceFile:
		return file.New(cfg.Metadata.PathIndex, cfg.Metadata.FieldIndex), nil, nil
	case config.SourceRedis:
		var opts []redis.Option
		if cfg.Redis.PathKey != "" || cfg.Redis.FieldKey != "" {
			pathKey, fieldKey := cfg.Redis.PathKey, cfg.Redis.FieldKey
			if pathKey == "" {
				pathKey = redis.DefaultPathKey
			}
			if fieldKey == "" {
				fieldKey = redis.DefaultFieldKey
			}
			opts = append(opts, redis.WithKeys(pathKey, fieldKey))
		}
		src := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return src, src.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown metadata source %q", cfg.Metadata.Source)
}

// PostProcessed lists the slugs of defs that have a post-processor.
func (r *Runtime) PostProcessed(defs []domain.CalculatorDefinition) []string {
	var out []string
	for _, d := range defs {
		if r.Pipeline.Has(d.Slug) {
			out = append(out, d.Slug)
		}
	}
	return out
}
