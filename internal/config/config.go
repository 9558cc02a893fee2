// Package config loads the medcalc runtime configuration from an optional
// YAML or JSON file, then applies MEDCALC_* environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata source kinds.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceRedis    = "redis"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MEDCALC_"

// Metadata selects where the two catalog documents are read from. The index
// paths apply to the file source.
type Metadata struct {
	Source     string `yaml:"source" json:"source"`
	PathIndex  string `yaml:"path_index" json:"path_index"`
	FieldIndex string `yaml:"field_index" json:"field_index"`
}

// Redis configures the redis metadata source.
type Redis struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	PathKey  string `yaml:"path_key" json:"path_key"`
	FieldKey string `yaml:"field_key" json:"field_key"`
}

// HTTP configures the REST server.
type HTTP struct {
	Port int `yaml:"port" json:"port"`
}

// Log holds the logger level (debug, info, warn, error).
type Log struct {
	Level string `yaml:"level" json:"level"`
}

// Config is the full runtime configuration.
type Config struct {
	Metadata Metadata `yaml:"metadata" json:"metadata"`
	Redis    Redis    `yaml:"redis" json:"redis"`
	HTTP     HTTP     `yaml:"http" json:"http"`
	Log      Log      `yaml:"log" json:"log"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Metadata: Metadata{
			Source:     SourceEmbedded,
			PathIndex:  "calc_path.json",
			FieldIndex: "name_to_python.json",
		},
		Redis: Redis{
			Addr: "localhost:6379",
		},
		HTTP: HTTP{Port: 8080},
		Log:  Log{Level: "info"},
	}
}

// Load builds the configuration: defaults, then the file at path (if path is
// non-empty), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return nil
	}
	// Default to YAML
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"METADATA_SOURCE":      &c.Metadata.Source,
		"METADATA_PATH_INDEX":  &c.Metadata.PathIndex,
		"METADATA_FIELD_INDEX": &c.Metadata.FieldIndex,
		"REDIS_ADDR":           &c.Redis.Addr,
		"REDIS_PASSWORD":       &c.Redis.Password,
		"REDIS_PATH_KEY":       &c.Redis.PathKey,
		"REDIS_FIELD_KEY":      &c.Redis.FieldKey,
		"LOG_LEVEL":            &c.Log.Level,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"REDIS_DB":  &c.Redis.DB,
		"HTTP_PORT": &c.HTTP.Port,
	}
	for name, dst := range ints {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
	}
	return nil
}

// Validate rejects unknown source kinds and out-of-range ports.
func (c Config) Validate() error {
	switch c.Metadata.Source {
	case SourceEmbedded, SourceFile, SourceRedis:
	default:
		return fmt.Errorf("unknown metadata source %q (want %s, %s or %s)",
			c.Metadata.Source, SourceEmbedded, SourceFile, SourceRedis)
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTP.Port)
	}
	return nil
}
