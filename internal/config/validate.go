package config

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"albumdupes/internal/similarity"
)

// OutputFormats lists the report formats accepted by output.format.
var OutputFormats = []string{"text", "table", "json"}

var logFormats = []string{"console", "json"}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMatching() error {
	if err := ValidateThreshold(c.Matching.Threshold); err != nil {
		return fmt.Errorf("matching.threshold %w", err)
	}
	if _, err := similarity.Lookup(c.Matching.Algorithm); err != nil {
		return fmt.Errorf("matching.algorithm: %w", err)
	}
	return nil
}

// ValidateThreshold reports whether value is a usable similarity threshold.
func ValidateThreshold(value float64) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return errors.New("must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateInput() error {
	if c.Input.ArtistColumn < 1 {
		return errors.New("input.artist_column must be positive")
	}
	if c.Input.AlbumColumn < 0 {
		return errors.New("input.album_column must be >= 0 (0 reads the artist column verbatim)")
	}
	if c.Input.AlbumColumn != 0 && c.Input.AlbumColumn == c.Input.ArtistColumn {
		return errors.New("input.album_column must differ from input.artist_column")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %v, got %q", OutputFormats, c.Output.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if !slices.Contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
