package domain

import "context"

// CalculatorFunc is the contract every calculator implementation satisfies.
// It receives the translated inputs and returns a mapping holding at least
// "Answer" and "Explanation". Any map with string keys is accepted, named map
// types such as Response included; anything else is a contract violation.
type CalculatorFunc func(ctx context.Context, inputs map[string]any) (any, error)

// FieldMapping translates one externally visible label into the parameter
// name the implementing function expects.
type FieldMapping struct {
	Label string `json:"label" yaml:"label"`
	Param string `json:"python_name" yaml:"python_name"`
}

// CalculatorDefinition describes a calculator available through the catalog.
// Values are never mutated after the catalog is built.
type CalculatorDefinition struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	ModulePath   string         `json:"module_path"`
	FunctionName string         `json:"function_name"`
	Type         string         `json:"type,omitempty"`
	Question     string         `json:"question,omitempty"`
	FieldMap     []FieldMapping `json:"fields"`
}

// Fields returns one entry per field map entry, in source order.
func (d CalculatorDefinition) Fields() []FieldMapping {
	out := make([]FieldMapping, len(d.FieldMap))
	copy(out, d.FieldMap)
	return out
}

// TranslateInputs renames known external labels to the parameter names the
// implementation expects. Keys that are not labels pass through unchanged
// unless a translated key already claimed the name. Values are not coerced.
func (d CalculatorDefinition) TranslateInputs(raw map[string]any) map[string]any {
	translated := make(map[string]any, len(raw))
	labels := make(map[string]struct{}, len(d.FieldMap))

	for _, f := range d.FieldMap {
		labels[f.Label] = struct{}{}
		if v, ok := raw[f.Label]; ok {
			translated[f.Param] = v
		}
	}

	for k, v := range raw {
		if _, isLabel := labels[k]; isLabel {
			continue
		}
		if _, taken := translated[k]; taken {
			continue
		}
		translated[k] = v
	}

	return translated
}

// Summary is the list view of a definition.
type Summary struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Detail is the single-calculator view of a definition.
type Detail struct {
	Summary
	Question string         `json:"question,omitempty"`
	Fields   []FieldMapping `json:"fields"`
}

// Summary projects the definition into its list view.
func (d CalculatorDefinition) Summary() Summary {
	return Summary{ID: d.ID, Slug: d.Slug, Name: d.Name, Type: d.Type}
}

// Detail projects the definition into its detail view.
func (d CalculatorDefinition) Detail() Detail {
	return Detail{
		Summary:  d.Summary(),
		Question: d.Question,
		Fields:   d.Fields(),
	}
}

// SkippedEntry records a metadata entry that could not become a definition.
type SkippedEntry struct {
	ID      string   `json:"id"`
	Missing []string `json:"missing"`
}
