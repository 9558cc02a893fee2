// Package postprocess derives interpretation fields from raw calculator results.
package postprocess

import (
	"sync"

	"github.com/aretw0/medcalc/pkg/domain"
)

// Func receives the translated inputs and the raw calculator result and
// returns fields merged over the base response. It must not mutate its arguments.
type Func func(inputs, raw map[string]any) (map[string]any, error)

// Pipeline maps calculator slugs to their post-processor. At most one
// processor is registered per slug.
type Pipeline struct {
	mu         sync.RWMutex
	processors map[string]Func
}

// New creates an empty pipeline.
func New() *Pipeline {
	return &Pipeline{processors: make(map[string]Func)}
}

// Default returns a pipeline populated with the built-in processors.
func Default() *Pipeline {
	p := New()
	p.Register(PSISlug, PSIRiskClass)
	return p
}

// Register installs fn for slug, replacing any previous processor.
func (p *Pipeline) Register(slug string, fn Func) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processors[slug] = fn
}

// Has reports whether slug has a processor.
func (p *Pipeline) Has(slug string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.processors[slug]
	return ok
}

// Apply runs the processor registered for def.Slug. Without one it returns
// nil and no error.
func (p *Pipeline) Apply(def domain.CalculatorDefinition, inputs, raw map[string]any) (map[string]any, error) {
	p.mu.RLock()
	fn, ok := p.processors[def.Slug]
	p.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return fn(inputs, raw)
}
