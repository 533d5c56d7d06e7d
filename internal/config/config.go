// SPDX-License-Identifier: MIT

// Package config loads the ntwrk YAML configuration.
//
// Config file locations (priority order):
//  1. $NTWRK_CONFIG
//  2. ./ntwrk.yaml
//
// The file is decoded over DefaultConfig, so a missing field keeps its
// default and an explicit zero stays zero. Validate checks the result.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath names an explicit config file.
	EnvConfigPath = "NTWRK_CONFIG"
	// ConfigFileName is looked up in the working directory.
	ConfigFileName = "ntwrk.yaml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// Load finds and loads the config file, or returns defaults if none found.
// The second result is the path that was read, empty for defaults.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads and validates config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// FindConfigPath returns the first existing candidate, or "".
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}
	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	return ""
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		PCS:      PCSConfig{Modulus: 12},
		Distance: DistanceConfig{Metric: "euclidean"},
		Network: NetworkConfig{
			Low:         0.1,
			High:        10,
			Probability: 1,
			Workers:     runtime.NumCPU(),
			Offset:      0.1,
		},
		Rhythm: RhythmConfig{Unit: "1", Resolution: 48},
		Output: OutputConfig{Format: FormatCSV, Dir: "."},
	}
}

// applyDefaults fills in values derived from other fields.
func (c *Config) applyDefaults() {
	if c.Output.Format == FormatSQLite && c.Output.SQLitePath == "" {
		c.Output.SQLitePath = filepath.Join(c.Output.Dir, "ntwrk.db")
	}
}

// Validate checks struct tags and the rhythm unit.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, describe(err))
	}
	if _, err := c.Rhythm.UnitRat(); err != nil {
		return err
	}

	return nil
}

// describe renders validator errors as "section.field: rule" pairs using
// the YAML names.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs[i] = fmt.Sprintf("%s: must satisfy %s (got %v)", strings.TrimPrefix(fe.Namespace(), "Config."), rule, fe.Value())
	}

	return strings.Join(msgs, "; ")
}

// UnitRat parses Unit as a positive rational.
func (r RhythmConfig) UnitRat() (*big.Rat, error) {
	u, ok := new(big.Rat).SetString(r.Unit)
	if !ok || u.Sign() <= 0 {
		return nil, fmt.Errorf("%w: rhythm.unit %q is not a positive rational", ErrInvalid, r.Unit)
	}

	return u, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
