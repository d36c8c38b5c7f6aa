// Package config handles the YAML configuration of rosterctl with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvAPIURL overrides api.base_url when set.
const EnvAPIURL = "ROSTER_API_URL"

// Config holds all rosterctl configuration.
type Config struct {
	API     API     `yaml:"api"`
	Refresh Refresh `yaml:"refresh"`
	Log     Log     `yaml:"log"`
}

// API holds the REST endpoints of the roster backend.
type API struct {
	BaseURL      string            `yaml:"base_url"`
	StudentsPath string            `yaml:"students_path"`
	ProgramsPath string            `yaml:"programs_path"`
	Timeout      time.Duration     `yaml:"timeout"`
	Headers      map[string]string `yaml:"headers"`
}

// Refresh holds the background refresh settings of the watch command.
type Refresh struct {
	Interval time.Duration `yaml:"interval"`
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: API{
			BaseURL:      "http://localhost:8080/api",
			StudentsPath: "/students",
			ProgramsPath: "/programs",
			Timeout:      10 * time.Second,
		},
		Refresh: Refresh{
			Interval: 5 * time.Minute,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the YAML config file at path and applies environment overrides.
// If the file does not exist, defaults are used without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	case len(data) != 0:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// comment-only files produce EOF with no decoded content
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.BaseURL = v
	}
	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("config: api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.StudentsPath == "" || c.API.ProgramsPath == "" {
		return errors.New("config: api.students_path and api.programs_path cannot be empty")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("config: api.timeout must be positive, got %v", c.API.Timeout)
	}
	if c.Refresh.Interval <= 0 {
		return fmt.Errorf("config: refresh.interval must be positive, got %v", c.Refresh.Interval)
	}
	return nil
}

// StudentsURL returns the endpoint of the students collection.
func (a API) StudentsURL() string {
	return joinURL(a.BaseURL, a.StudentsPath)
}

// ProgramsURL returns the endpoint of the programs collection.
func (a API) ProgramsURL() string {
	return joinURL(a.BaseURL, a.ProgramsPath)
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
