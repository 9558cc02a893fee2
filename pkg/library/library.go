package library

import (
	"sort"
	"sync"

	"github.com/aretw0/medcalc/pkg/domain"
)

// Library maps (module path, function name) pairs to calculator
// implementations. Implementations register themselves under the same
// identifiers the metadata uses, so lookups stay string-keyed without any
// runtime reflection.
type Library struct {
	mu      sync.RWMutex
	modules map[string]map[string]domain.CalculatorFunc
}

// New creates a new empty library.
func New() *Library {
	return &Library{
		modules: make(map[string]map[string]domain.CalculatorFunc),
	}
}

// Register adds an implementation to the library.
// If one is already registered under the same module and function, it is overwritten.
func (l *Library) Register(module, function string, fn domain.CalculatorFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()

	funcs, ok := l.modules[module]
	if !ok {
		funcs = make(map[string]domain.CalculatorFunc)
		l.modules[module] = funcs
	}
	funcs[function] = fn
}

// Resolve looks up an implementation.
// It distinguishes an unknown module from a known module lacking the function.
func (l *Library) Resolve(module, function string) (domain.CalculatorFunc, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	funcs, ok := l.modules[module]
	if !ok {
		return nil, &domain.ResolutionError{Module: module, Function: function, Err: domain.ErrModuleNotFound}
	}
	fn, ok := funcs[function]
	if !ok {
		return nil, &domain.ResolutionError{Module: module, Function: function, Err: domain.ErrFunctionNotFound}
	}
	return fn, nil
}

// Modules returns the registered module paths, sorted.
func (l *Library) Modules() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, 0, len(l.modules))
	for m := range l.modules {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
