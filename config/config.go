// Package config provides configuration loading and access for the
// planner and static finders, following the embedded-defaults-plus-
// override pattern used across the pack's simulation loaders.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the tunable parameters that would otherwise be
// hardcoded constants scattered across dstarlite and finder.
type Config struct {
	Retry  RetryConfig  `yaml:"retry"`
	Loop   LoopConfig   `yaml:"loop"`
	Finder FinderConfig `yaml:"finder"`
}

// RetryConfig bounds the D* Lite retry counters (spec.md §4.3.4/§4.3.6).
// A cap of 0 leaves that cap derived from the start/goal distance.
type RetryConfig struct {
	ComputeMaxRetry     int `yaml:"compute_max_retry"`
	ReconstructMaxRetry int `yaml:"reconstruct_max_retry"`
	RealLoopMaxRetry    int `yaml:"real_loop_max_retry"`
	MinDefaultRetryCap  int `yaml:"min_default_retry_cap"`
}

// LoopConfig tunes FindLoop's step cadence (spec.md §4.3.6).
type LoopConfig struct {
	IntervalMsec int `yaml:"interval_msec"`
}

// FinderConfig holds the default tuning for the static finders
// (spec.md §4.5).
type FinderConfig struct {
	MaxRetry     int     `yaml:"max_retry"`
	Weight       float32 `yaml:"weight"`
	Depth        int     `yaml:"depth"`
	Delta        float32 `yaml:"delta"`
	MemoryBudget int     `yaml:"memory_budget"`
}

var global *Config

// Init loads configuration from path, or embedded defaults if path is
// empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Current returns the effective configuration for callers that must not
// panic: whatever Init loaded, or the embedded defaults if Init has not
// been called yet. dstarlite and finder read their tunable defaults
// through Current so a caller who never calls Init still gets the
// embedded defaults instead of a crash.
func Current() *Config {
	if global != nil {
		return global
	}
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: failed to parse embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}
