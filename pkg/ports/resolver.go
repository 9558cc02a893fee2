package ports

import "github.com/aretw0/medcalc/pkg/domain"

// Resolver locates calculator implementations by the identifiers found in metadata.
type Resolver interface {
	// Resolve returns the implementation registered for module and function.
	// It returns a *domain.ResolutionError wrapping domain.ErrModuleNotFound or
	// domain.ErrFunctionNotFound when nothing matches.
	Resolve(module, function string) (domain.CalculatorFunc, error)
}
