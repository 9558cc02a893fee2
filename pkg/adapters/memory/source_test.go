package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/medcalc/pkg/adapters/memory"
	"github.com/aretw0/medcalc/pkg/calculators"
	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Bundled(t *testing.T) {
	meta, err := memory.NewSource(calculators.PathIndex, calculators.FieldIndex).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, meta.FieldIndex.Len())
	assert.Equal(t, "5", meta.FieldIndex.Oldest().Key, "document order is preserved")
}

func TestSource_Malformed(t *testing.T) {
	_, err := memory.NewSource([]byte(`[`), []byte(`{}`)).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedMetadata)
}
