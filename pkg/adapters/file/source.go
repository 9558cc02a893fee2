package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aretw0/medcalc/pkg/catalog"
	"github.com/aretw0/medcalc/pkg/domain"
)

// Source implements ports.MetadataSource over two JSON files on disk.
type Source struct {
	PathIndex  string
	FieldIndex string
}

// New creates a Source reading the path index and the field-mapping index
// from the given files.
func New(pathIndex, fieldIndex string) *Source {
	return &Source{PathIndex: pathIndex, FieldIndex: fieldIndex}
}

// Load reads and parses both files.
func (s *Source) Load(ctx context.Context) (catalog.RawMetadata, error) {
	paths, err := read(s.PathIndex)
	if err != nil {
		return catalog.RawMetadata{}, err
	}
	fields, err := read(s.FieldIndex)
	if err != nil {
		return catalog.RawMetadata{}, err
	}
	return catalog.ParseMetadata(paths, fields)
}

func read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMetadataNotFound, path)
		}
		return nil, fmt.Errorf("failed to read metadata %s: %w", path, err)
	}
	return data, nil
}
