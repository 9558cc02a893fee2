package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/medcalc/pkg/catalog"
	"github.com/aretw0/medcalc/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Default keys under which the two metadata documents are stored.
const (
	DefaultPathKey  = "medcalc:metadata:calc_path"
	DefaultFieldKey = "medcalc:metadata:name_to_python"
)

// Source implements ports.MetadataSource using Redis, so every replica reads
// the same copy of the catalog metadata.
type Source struct {
	client   *backend.Client
	pathKey  string
	fieldKey string
}

// Option configures a Source.
type Option func(*Source)

// WithKeys overrides the keys holding the path index and the field index.
func WithKeys(pathKey, fieldKey string) Option {
	return func(s *Source) {
		s.pathKey = pathKey
		s.fieldKey = fieldKey
	}
}

// New creates a new Redis source with options.
func New(address, password string, db int, opts ...Option) *Source {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis source from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Source {
	s := &Source{
		client:   client,
		pathKey:  DefaultPathKey,
		fieldKey: DefaultFieldKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches both documents and parses them.
func (s *Source) Load(ctx context.Context) (catalog.RawMetadata, error) {
	paths, err := s.get(ctx, s.pathKey)
	if err != nil {
		return catalog.RawMetadata{}, err
	}
	fields, err := s.get(ctx, s.fieldKey)
	if err != nil {
		return catalog.RawMetadata{}, err
	}
	return catalog.ParseMetadata(paths, fields)
}

// Publish stores both documents, replacing any previous copy.
func (s *Source) Publish(ctx context.Context, pathIndex, fieldIndex []byte) error {
	if _, err := catalog.ParseMetadata(pathIndex, fieldIndex); err != nil {
		return err
	}
	_, err := s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Set(ctx, s.pathKey, pathIndex, 0)
		pipe.Set(ctx, s.fieldKey, fieldIndex, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis error publishing metadata: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Source) Close() error {
	return s.client.Close()
}

func (s *Source) get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: redis key %s", domain.ErrMetadataNotFound, key)
		}
		return nil, fmt.Errorf("redis error reading %s: %w", key, err)
	}
	return data, nil
}
