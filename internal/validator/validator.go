package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/aretw0/medcalc/pkg/ports"
)

// Unresolved names a definition whose implementation cannot be found.
type Unresolved struct {
	Slug     string
	Module   string
	Function string
	Err      error
}

// Report is the outcome of a catalog check.
type Report struct {
	Definitions int
	Skipped     []domain.SkippedEntry
	Unresolved  []Unresolved
}

// ValidateCatalog resolves the implementation of every definition and
// collects the failures together with the entries the builder skipped.
func ValidateCatalog(defs []domain.CalculatorDefinition, skipped []domain.SkippedEntry, resolver ports.Resolver) Report {
	report := Report{Definitions: len(defs), Skipped: skipped}
	for _, def := range defs {
		if _, err := resolver.Resolve(def.ModulePath, def.FunctionName); err != nil {
			report.Unresolved = append(report.Unresolved, Unresolved{
				Slug:     def.Slug,
				Module:   def.ModulePath,
				Function: def.FunctionName,
				Err:      err,
			})
		}
	}
	return report
}

// OK reports whether every definition resolved. Skipped entries are warnings.
func (r Report) OK() bool {
	return len(r.Unresolved) == 0
}

// Err summarizes unresolved definitions, or returns nil.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	var errors []string
	for _, u := range r.Unresolved {
		errors = append(errors, fmt.Sprintf("%s: %v", u.Slug, u.Err))
	}
	return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
}

// Warnings describes every skipped metadata entry.
func (r Report) Warnings() []string {
	out := make([]string, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		out = append(out, fmt.Sprintf("entry %s skipped: missing %s", s.ID, strings.Join(s.Missing, ", ")))
	}
	return out
}
