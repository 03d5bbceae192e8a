package config

import (
	"fmt"

	"subextract/internal/subformat"
)

type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Watch      WatchConfig      `yaml:"watch"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ExtractionConfig struct {
	Language  string `yaml:"language"`
	Format    string `yaml:"format"`
	OutputDir string `yaml:"output_dir"`
	Overwrite bool   `yaml:"overwrite"`
}

type WatchConfig struct {
	Dir           string `yaml:"dir"`
	SettleDelayMS int    `yaml:"settle_delay_ms"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Extraction.Language == "" {
		c.Extraction.Language = "eng"
	}
	if c.Extraction.Format == "" {
		c.Extraction.Format = "SRT"
	}
	if _, err := subformat.Lookup(c.Extraction.Format); err != nil {
		return fmt.Errorf("extraction.format: %w", err)
	}
	if c.Watch.SettleDelayMS <= 0 {
		c.Watch.SettleDelayMS = 500
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
