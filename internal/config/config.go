// Package config reads runtime settings for the image tools from the
// environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"

	"github.com/ironsheep/image-container/internal/codec"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "IMAGE_MCP_"

// Config holds codec and logging settings.
type Config struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `mapstructure:"log_level"`

	// JPEGQuality is used when re-encoding JPEG images (1-100).
	JPEGQuality int `mapstructure:"jpeg_quality"`

	// Resampler names the resampling backend: imaging, bild or xdraw.
	Resampler string `mapstructure:"resampler"`

	// Filter names the resampling filter, e.g. lanczos or linear.
	Filter string `mapstructure:"filter"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		JPEGQuality: codec.DefaultJPEGQuality,
		Resampler:   codec.BackendImaging,
		Filter:      codec.FilterLanczos,
	}
}

// Load returns Default overridden by IMAGE_MCP_* variables from the
// process environment.
func Load() (*Config, error) {
	return FromEnviron(os.Environ())
}

// FromEnviron is Load for an explicit "KEY=value" list. Keys are matched
// case-insensitively after the prefix: IMAGE_MCP_JPEG_QUALITY=80 sets
// JPEGQuality.
func FromEnviron(environ []string) (*Config, error) {
	values := make(map[string]interface{})
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		values[strings.ToLower(strings.TrimPrefix(key, EnvPrefix))] = value
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality %d outside 1-100", c.JPEGQuality)
	}
	if _, err := codec.NewResampler(c.Resampler, c.Filter); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Codec builds the codec described by c.
func (c *Config) Codec() (*codec.Default, error) {
	r, err := codec.NewResampler(c.Resampler, c.Filter)
	if err != nil {
		return nil, err
	}
	return codec.New(codec.Options{JPEGQuality: c.JPEGQuality, Resampler: r}), nil
}
