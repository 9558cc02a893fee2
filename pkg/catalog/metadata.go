package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/mitchellh/mapstructure"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is one ordered JSON object.
type Entry = orderedmap.OrderedMap[string, any]

// PathEntry is a decoded path index record.
type PathEntry struct {
	Name     string `mapstructure:"-"`
	ID       string `mapstructure:"Calculator ID"`
	FilePath string `mapstructure:"File Path"`
}

// RawMetadata holds both documents as parsed, in document order.
type RawMetadata struct {
	// PathIndex is keyed by calculator name.
	PathIndex *orderedmap.OrderedMap[string, *Entry]
	// FieldIndex is keyed by calculator identity.
	FieldIndex *orderedmap.OrderedMap[string, *Entry]
}

// ParseMetadata decodes the path index and the field-mapping index.
// Any syntax or shape error is reported as domain.ErrMalformedMetadata.
func ParseMetadata(pathIndex, fieldIndex []byte) (RawMetadata, error) {
	paths, err := parseDocument("path index", pathIndex)
	if err != nil {
		return RawMetadata{}, err
	}
	fields, err := parseDocument("field index", fieldIndex)
	if err != nil {
		return RawMetadata{}, err
	}
	return RawMetadata{PathIndex: paths, FieldIndex: fields}, nil
}

func parseDocument(name string, data []byte) (*orderedmap.OrderedMap[string, *Entry], error) {
	doc := orderedmap.New[string, *Entry]()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedMetadata, name, err)
	}
	return doc, nil
}

// PathEntries decodes the path index into records keyed by identity.
// Records without a "Calculator ID" are ignored; identifiers are normalized to
// their string form whether the document stores them as numbers or strings.
func (m RawMetadata) PathEntries() (map[string]PathEntry, error) {
	out := make(map[string]PathEntry)
	if m.PathIndex == nil {
		return out, nil
	}

	for pair := m.PathIndex.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			continue
		}
		fields := make(map[string]any, pair.Value.Len())
		for p := pair.Value.Oldest(); p != nil; p = p.Next() {
			fields[p.Key] = p.Value
		}
		if v, ok := fields["Calculator ID"]; !ok || v == nil {
			continue
		}

		var entry PathEntry
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &entry,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(fields); err != nil {
			return nil, fmt.Errorf("%w: path index entry %q: %v", domain.ErrMalformedMetadata, pair.Key, err)
		}
		entry.Name = pair.Key
		out[entry.ID] = entry
	}
	return out, nil
}
