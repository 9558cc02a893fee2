package registry

import (
	"github.com/aretw0/medcalc/pkg/domain"
)

// Registry is a frozen snapshot of calculator definitions with lookup indices
// by slug and by identity. It exposes no mutation and is safe for concurrent use.
type Registry struct {
	calculators []domain.CalculatorDefinition
	bySlug      map[string]int
	byID        map[string]int
}

// New indexes the given definitions. Slugs and identities are expected to be
// unique, as produced by catalog.Build; on duplicates the last one is indexed.
func New(defs []domain.CalculatorDefinition) *Registry {
	r := &Registry{
		calculators: make([]domain.CalculatorDefinition, len(defs)),
		bySlug:      make(map[string]int, len(defs)),
		byID:        make(map[string]int, len(defs)),
	}
	copy(r.calculators, defs)

	for i, d := range r.calculators {
		r.bySlug[d.Slug] = i
		r.byID[d.ID] = i
	}
	return r
}

// List returns every definition in build order.
func (r *Registry) List() []domain.CalculatorDefinition {
	out := make([]domain.CalculatorDefinition, len(r.calculators))
	copy(out, r.calculators)
	return out
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.calculators)
}

// GetBySlug returns the definition for slug or a *domain.NotFoundError.
func (r *Registry) GetBySlug(slug string) (domain.CalculatorDefinition, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return domain.CalculatorDefinition{}, &domain.NotFoundError{Slug: slug}
	}
	return r.calculators[i], nil
}

// GetByID returns the definition for an identity.
func (r *Registry) GetByID(id string) (domain.CalculatorDefinition, bool) {
	i, ok := r.byID[id]
	if !ok {
		return domain.CalculatorDefinition{}, false
	}
	return r.calculators[i], true
}
