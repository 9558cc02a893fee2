package ports

import (
	"context"

	"github.com/aretw0/medcalc/pkg/catalog"
)

// MetadataSource defines where the two metadata documents come from.
// This allows the storage layer (files, embedded data, Redis) to be decoupled.
type MetadataSource interface {
	// Load reads and parses both documents.
	// It returns domain.ErrMetadataNotFound if either document is absent and
	// domain.ErrMalformedMetadata if either is not valid JSON.
	Load(ctx context.Context) (catalog.RawMetadata, error)
}
