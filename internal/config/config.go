// Package config loads sie.yaml and applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/sie/internal/buildinfo"
	"github.com/cleared-dev/sie/internal/textutil"
)

// FileName is the default config file name.
const FileName = "sie.yaml"

// Policies for vouchers that do not balance.
const (
	UnbalancedFail = "fail"
	UnbalancedWarn = "warn"
)

// Config represents the top-level sie.yaml configuration.
type Config struct {
	Company    CompanyConfig    `yaml:"company"`
	Encoding   string           `yaml:"encoding"`
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

// CompanyConfig identifies the company written into new files.
type CompanyConfig struct {
	Name      string `yaml:"name"`
	OrgNumber string `yaml:"org_number,omitempty"`
	Currency  string `yaml:"currency"`
}

// ValidationConfig controls the checks run before a ledger is written.
type ValidationConfig struct {
	Unbalanced     string `yaml:"unbalanced"` // "fail" or "warn"
	RequireObjects bool   `yaml:"require_objects"`
}

// OutputConfig controls the #PROGRAM post of written files.
type OutputConfig struct {
	Program        string `yaml:"program"`
	ProgramVersion string `yaml:"program_version"`
}

// LogConfig locates the run log.
type LogConfig struct {
	Path string `yaml:"path"`
}

// Load reads a sie.yaml file from disk. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, returning defaults when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(companyName string) *Config {
	return &Config{
		Company: CompanyConfig{
			Name:     companyName,
			Currency: "SEK",
		},
		Encoding: string(textutil.CP437),
		Validation: ValidationConfig{
			Unbalanced:     UnbalancedFail,
			RequireObjects: true,
		},
		Output: OutputConfig{
			Program:        "sie",
			ProgramVersion: buildinfo.Version,
		},
		Log: LogConfig{
			Path: "sie-runs.csv",
		},
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := textutil.ParseEncoding(c.Encoding); err != nil {
		return fmt.Errorf("config encoding: %w", err)
	}
	switch c.Validation.Unbalanced {
	case UnbalancedFail, UnbalancedWarn:
	default:
		return fmt.Errorf("config validation.unbalanced: unknown policy %q", c.Validation.Unbalanced)
	}
	return nil
}

// TextEncoding returns the parsed Encoding. Call Validate first.
func (c *Config) TextEncoding() textutil.Encoding {
	enc, err := textutil.ParseEncoding(c.Encoding)
	if err != nil {
		return textutil.CP437
	}
	return enc
}

// LoadEnv loads envPath (or ./.env when empty and present) into the process
// environment and applies SIE_* overrides to c.
func (c *Config) LoadEnv(envPath string) error {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("loading .env file: %w", err)
		}
	} else {
		// Missing ./.env is fine.
		_ = godotenv.Load()
	}

	if v := os.Getenv("SIE_ENCODING"); v != "" {
		c.Encoding = v
	}
	if v := os.Getenv("SIE_UNBALANCED"); v != "" {
		c.Validation.Unbalanced = v
	}
	if v := os.Getenv("SIE_REQUIRE_OBJECTS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SIE_REQUIRE_OBJECTS: %w", err)
		}
		c.Validation.RequireObjects = b
	}
	if v := os.Getenv("SIE_RUN_LOG"); v != "" {
		c.Log.Path = v
	}
	return c.Validate()
}
