package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeMatching(); err != nil {
		return err
	}
	c.normalizeInput()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeMatching() error {
	if value, ok := os.LookupEnv("ALBUMDUPES_THRESHOLD"); ok && strings.TrimSpace(value) != "" {
		threshold, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("ALBUMDUPES_THRESHOLD: %w", err)
		}
		c.Matching.Threshold = threshold
	}
	if value, ok := os.LookupEnv("ALBUMDUPES_ALGORITHM"); ok && strings.TrimSpace(value) != "" {
		c.Matching.Algorithm = value
	}
	c.Matching.Algorithm = strings.ToLower(strings.TrimSpace(c.Matching.Algorithm))
	if c.Matching.Algorithm == "" {
		c.Matching.Algorithm = defaultAlgorithm
	}
	return nil
}

func (c *Config) normalizeInput() {
	c.Input.Sheet = strings.TrimSpace(c.Input.Sheet)
	if c.Input.ArtistColumn == 0 {
		c.Input.ArtistColumn = defaultArtistColumn
	}
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Path = strings.TrimSpace(c.Output.Path)
	if c.Output.Path != "" {
		expanded, err := expandPath(c.Output.Path)
		if err != nil {
			return fmt.Errorf("output.path: %w", err)
		}
		c.Output.Path = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := os.LookupEnv("ALBUMDUPES_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Output = strings.TrimSpace(c.Logging.Output)
	switch c.Logging.Output {
	case "":
		c.Logging.Output = defaultLogOutput
	case "stderr", "stdout":
	default:
		expanded, err := expandPath(c.Logging.Output)
		if err != nil {
			return fmt.Errorf("logging.output: %w", err)
		}
		c.Logging.Output = expanded
	}
	return nil
}
