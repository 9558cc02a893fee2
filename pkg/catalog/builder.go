package catalog

import (
	"fmt"
	"strings"

	"github.com/aretw0/medcalc/pkg/domain"
)

// Metadata keys of the field-mapping index, matched case-insensitively.
// Every other key of an entry belongs to the field map.
const (
	metaFilePath = "file path"
	metaFunction = "explanation function"
	metaName     = "calculator name"
	metaType     = "type"
	metaQuestion = "question"
)

var metaKeys = map[string]struct{}{
	metaFilePath: {},
	metaFunction: {},
	metaName:     {},
	metaType:     {},
	metaQuestion: {},
}

// BuildOption configures Build.
type BuildOption func(*builder)

// WithSkipReporter receives every field index entry that could not become a
// definition. Without it, incomplete entries are dropped silently.
func WithSkipReporter(fn func(domain.SkippedEntry)) BuildOption {
	return func(b *builder) {
		b.report = fn
	}
}

type builder struct {
	report func(domain.SkippedEntry)
}

// Build merges both metadata documents into definitions, in field index order.
// Entries missing an implementation path, an explanation function or a name
// are excluded.
func Build(meta RawMetadata, opts ...BuildOption) ([]domain.CalculatorDefinition, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	paths, err := meta.PathEntries()
	if err != nil {
		return nil, err
	}

	slugs := newSlugger()
	var defs []domain.CalculatorDefinition

	if meta.FieldIndex == nil {
		return defs, nil
	}

	for pair := meta.FieldIndex.Oldest(); pair != nil; pair = pair.Next() {
		id := pair.Key
		metadata := map[string]string{}
		var fieldMap []domain.FieldMapping

		if pair.Value != nil {
			for p := pair.Value.Oldest(); p != nil; p = p.Next() {
				lower := strings.ToLower(p.Key)
				if _, ok := metaKeys[lower]; ok {
					metadata[lower] = text(p.Value)
					continue
				}
				if p.Value == nil {
					continue
				}
				fieldMap = append(fieldMap, domain.FieldMapping{Label: p.Key, Param: text(p.Value)})
			}
		}

		pathEntry := paths[id]
		relPath := firstNonEmpty(pathEntry.FilePath, metadata[metaFilePath])
		function := metadata[metaFunction]
		name := firstNonEmpty(metadata[metaName], pathEntry.Name)

		if missing := missingKeys(relPath, function, name); len(missing) > 0 {
			if b.report != nil {
				b.report(domain.SkippedEntry{ID: id, Missing: missing})
			}
			continue
		}

		defs = append(defs, domain.CalculatorDefinition{
			ID:           id,
			Name:         name,
			Slug:         slugs.next(name),
			ModulePath:   ModulePath(relPath),
			FunctionName: function,
			Type:         metadata[metaType],
			Question:     metadata[metaQuestion],
			FieldMap:     fieldMap,
		})
	}

	return defs, nil
}

func missingKeys(relPath, function, name string) []string {
	var missing []string
	if relPath == "" {
		missing = append(missing, "File Path")
	}
	if function == "" {
		missing = append(missing, "Explanation Function")
	}
	if name == "" {
		missing = append(missing, "Calculator Name")
	}
	return missing
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// text renders a metadata value as a string; null becomes empty.
func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
	}
	return fmt.Sprint(v)
}
