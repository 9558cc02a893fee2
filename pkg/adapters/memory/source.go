package memory

import (
	"context"

	"github.com/aretw0/medcalc/pkg/catalog"
)

// Source implements ports.MetadataSource over documents held in memory.
// The bundled catalog and tests use it.
type Source struct {
	pathIndex  []byte
	fieldIndex []byte
}

// NewSource creates a Source from raw JSON documents.
func NewSource(pathIndex, fieldIndex []byte) *Source {
	return &Source{pathIndex: pathIndex, fieldIndex: fieldIndex}
}

// Load parses the documents.
func (s *Source) Load(ctx context.Context) (catalog.RawMetadata, error) {
	return catalog.ParseMetadata(s.pathIndex, s.fieldIndex)
}
