package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/medcalc/pkg/adapters/redis"
	"github.com/aretw0/medcalc/pkg/calculators"
	"github.com/aretw0/medcalc/pkg/domain"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSource(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Source) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, redis.NewFromClient(client, opts...)
}

func TestSource_PublishAndLoad(t *testing.T) {
	_, src := newSource(t)
	ctx := context.Background()

	require.NoError(t, src.Publish(ctx, calculators.PathIndex, calculators.FieldIndex))

	meta, err := src.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, meta.PathIndex.Len())
	assert.Equal(t, 4, meta.FieldIndex.Len())
}

func TestSource_CustomKeys(t *testing.T) {
	mr, src := newSource(t, redis.WithKeys("p", "f"))
	mr.Set("p", `{"X": {"Calculator ID": 1, "File Path": "x.py"}}`)
	mr.Set("f", `{"1": {"Explanation Function": "x"}}`)

	meta, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", meta.FieldIndex.Oldest().Key)
}

func TestSource_MissingKey(t *testing.T) {
	mr, src := newSource(t)
	mr.Set(redis.DefaultPathKey, `{}`)

	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMetadataNotFound)
}

func TestSource_Malformed(t *testing.T) {
	mr, src := newSource(t)
	mr.Set(redis.DefaultPathKey, `{}`)
	mr.Set(redis.DefaultFieldKey, `not json`)

	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedMetadata)

	err = src.Publish(context.Background(), []byte(`{}`), []byte(`nope`))
	assert.ErrorIs(t, err, domain.ErrMalformedMetadata)
}
