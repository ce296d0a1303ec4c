package apecs

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config tunes the storage defaults of a world. The zero value is usable;
// DefaultConfig carries the recommended starting points.
type Config struct {
	// InitialCapacity is the id range dense stores preallocate for.
	InitialCapacity int `json:"initial_capacity" yaml:"initial_capacity"`

	// CacheSize is the slot count of read caches created by UseCachedMap.
	CacheSize int `json:"cache_size" yaml:"cache_size"`

	// LogResolution enables a debug log line on first store resolution.
	LogResolution bool `json:"log_resolution" yaml:"log_resolution"`
}

// DefaultConfig returns the configuration used by NewWorld.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 1024,
		CacheSize:       256,
	}
}

// Validate reports the first invalid field, or nil.
func (c Config) Validate() error {
	if c.InitialCapacity < 0 {
		return fmt.Errorf("apecs: initial_capacity must be >= 0, got %d", c.InitialCapacity)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("apecs: cache_size must be >= 0, got %d", c.CacheSize)
	}
	return nil
}

// LoadConfig reads a YAML configuration from r. Fields missing from the
// document keep their default values.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("apecs: decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
