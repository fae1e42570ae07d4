// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config resolves huffpack configuration from the environment and
// an optional YAML override file.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/huffpack/internal/blob"
	"golang.org/x/huffpack/internal/derrors"
	"golang.org/x/huffpack/internal/log"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a huffpack run.
type Config struct {
	// LogLevel is the minimum severity logged, as accepted by log.SetLevel.
	LogLevel string `yaml:"LogLevel"`
	// Workers is the number of inputs processed at the same time.
	Workers int `yaml:"Workers"`
	// CompressSuffix is appended to an input name to name its archive.
	CompressSuffix string `yaml:"CompressSuffix"`
	// DecompressSuffix is appended to an archive name to name its output.
	DecompressSuffix string `yaml:"DecompressSuffix"`

	// ProjectID is the GCP project used for Cloud Logging.
	ProjectID string `yaml:"ProjectID"`
	// LogName is the Cloud Logging log to write to.
	LogName string `yaml:"LogName"`
	// Stackdriver sends logs to Cloud Logging instead of stderr.
	Stackdriver bool `yaml:"Stackdriver"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		Workers:          4,
		CompressSuffix:   ".huf",
		DecompressSuffix: ".orig",
		LogName:          "huffpack",
	}
}

// GetEnv looks up the given key from the environment, returning its value if
// it exists, and otherwise returning the given fallback value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt is like GetEnv, but parses the value as an integer.
func getEnvInt(key string, fallback int) (int, error) {
	if s, ok := os.LookupEnv(key); ok {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("bad value %q for %s: %w", s, key, derrors.InvalidArgument)
		}
		return v, nil
	}
	return fallback, nil
}

// getEnvBool is like GetEnv, but parses the value as a boolean.
func getEnvBool(key string, fallback bool) (bool, error) {
	if s, ok := os.LookupEnv(key); ok {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("bad value %q for %s: %w", s, key, derrors.InvalidArgument)
		}
		return v, nil
	}
	return fallback, nil
}

// Init resolves the configuration: defaults first, then the environment,
// then the YAML file at overrideLocation if it is not empty. The location
// may be a file or a gs:// URL.
func Init(ctx context.Context, overrideLocation string) (_ *Config, err error) {
	defer derrors.Wrap(&err, "config.Init(ctx, %q)", overrideLocation)

	d := Default()
	cfg := &Config{
		LogLevel:         GetEnv("HUFFPACK_LOG_LEVEL", d.LogLevel),
		CompressSuffix:   GetEnv("HUFFPACK_COMPRESS_SUFFIX", d.CompressSuffix),
		DecompressSuffix: GetEnv("HUFFPACK_DECOMPRESS_SUFFIX", d.DecompressSuffix),
		ProjectID:        os.Getenv("GOOGLE_CLOUD_PROJECT"),
		LogName:          GetEnv("HUFFPACK_LOG_NAME", d.LogName),
	}
	if cfg.Workers, err = getEnvInt("HUFFPACK_WORKERS", d.Workers); err != nil {
		return nil, err
	}
	if cfg.Stackdriver, err = getEnvBool("HUFFPACK_STACKDRIVER", d.Stackdriver); err != nil {
		return nil, err
	}
	if overrideLocation != "" {
		data, err := blob.Read(ctx, overrideLocation)
		if err != nil {
			return nil, err
		}
		ov, err := Parse(data)
		if err != nil {
			return nil, err
		}
		log.Infof(ctx, "processing overrides from %s", overrideLocation)
		applyOverrides(ctx, cfg, ov)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse parses yamlData as a YAML description of a Config. Fields that are
// absent are left at their zero values.
func Parse(yamlData []byte) (_ *Config, err error) {
	defer derrors.Wrap(&err, "config.Parse(data)")

	var cfg Config
	if err := yaml.Unmarshal(yamlData, &cfg); err != nil {
		return nil, fmt.Errorf("%v: %w", err, derrors.InvalidArgument)
	}
	return &cfg, nil
}

func applyOverrides(ctx context.Context, cfg, ov *Config) {
	override(ctx, "LogLevel", &cfg.LogLevel, ov.LogLevel)
	override(ctx, "Workers", &cfg.Workers, ov.Workers)
	override(ctx, "CompressSuffix", &cfg.CompressSuffix, ov.CompressSuffix)
	override(ctx, "DecompressSuffix", &cfg.DecompressSuffix, ov.DecompressSuffix)
	override(ctx, "ProjectID", &cfg.ProjectID, ov.ProjectID)
	override(ctx, "LogName", &cfg.LogName, ov.LogName)
	override(ctx, "Stackdriver", &cfg.Stackdriver, ov.Stackdriver)
}

func override[T comparable](ctx context.Context, name string, field *T, val T) {
	var zero T
	if val != zero {
		*field = val
		log.Infof(ctx, "overriding %s with %v", name, val)
	}
}

// Validate reports whether the values of cfg can be used.
func (cfg *Config) Validate() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d: %w", cfg.Workers, derrors.InvalidArgument)
	}
	if cfg.CompressSuffix == "" || cfg.DecompressSuffix == "" {
		return fmt.Errorf("output suffixes must not be empty: %w", derrors.InvalidArgument)
	}
	if cfg.Stackdriver && cfg.ProjectID == "" {
		return fmt.Errorf("logging to Cloud Logging requires a project ID: %w", derrors.InvalidArgument)
	}
	return nil
}
