// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ik5/kotorcodec/audio"
)

// Config is the complete tool configuration.
type Config struct {
	Headers   HeadersConfig   `yaml:"headers"`
	Transcode TranscodeConfig `yaml:"transcode"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// HeadersConfig points at reference files whose leading bytes replace the
// built-in headers. An empty path keeps the built-in header.
type HeadersConfig struct {
	SFXFile string `yaml:"sfx_file"`
	VOFile  string `yaml:"vo_file"`
}

// TranscodeConfig tunes the transcoder.
type TranscodeConfig struct {
	TempDir         string `yaml:"temp_dir"`
	Seed            uint64 `yaml:"seed"` // 0 seeds from the clock
	StrictDetection bool   `yaml:"strict_detection"`
	AtomicReplace   bool   `yaml:"atomic_replace"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// MetricsConfig names the node exporter textfile written after each run.
// Empty disables it.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads path over Default. Keys missing from the file keep their
// default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Headers.Validate(); err != nil {
		return fmt.Errorf("headers config: %w", err)
	}

	if err := c.Transcode.Validate(); err != nil {
		return fmt.Errorf("transcode config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics config: %w", err)
	}

	return nil
}

// Validate checks that the configured reference files are regular files.
func (h *HeadersConfig) Validate() error {
	files := []struct{ key, path string }{
		{"sfx_file", h.SFXFile},
		{"vo_file", h.VOFile},
	}

	for _, f := range files {
		key, path := f.key, f.path
		if path == "" {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%s must be a regular file, got '%s'", key, path)
		}
	}

	return nil
}

// Registry loads the header set described by h.
func (h *HeadersConfig) Registry() (*audio.HeaderRegistry, error) {
	return audio.LoadHeaderRegistry(h.SFXFile, h.VOFile)
}

// Validate checks that temp_dir, when set, is a directory.
func (t *TranscodeConfig) Validate() error {
	if t.TempDir == "" {
		return nil
	}

	info, err := os.Stat(t.TempDir)
	if err != nil {
		return fmt.Errorf("temp_dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("temp_dir must be a directory, got '%s'", t.TempDir)
	}

	return nil
}

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	// anything other than stdout or stderr is a file path
	if strings.TrimSpace(l.Output) == "" {
		return fmt.Errorf("output cannot be empty")
	}

	return nil
}

// Validate checks the textfile name. The node exporter only collects files
// ending in .prom.
func (m *MetricsConfig) Validate() error {
	if m.Textfile == "" {
		return nil
	}

	if filepath.Ext(m.Textfile) != ".prom" {
		return fmt.Errorf("textfile must end in .prom, got '%s'", m.Textfile)
	}

	return nil
}
