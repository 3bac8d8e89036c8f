// Package config handles Vegvisir configuration via environment
// variables and an optional YAML file.
//
// Environment variables take precedence over file settings so deployment
// workflows (Docker, Kubernetes) can override a checked-in config file
// without editing it.
//
// Environment Variables:
//
//	VEGVISIR_PLANNER_MAX_ROUNDS          - Safety cap on planning rounds (default: 64)
//	VEGVISIR_PLANNER_CARTESIAN_ENABLED   - Allow cartesian-product fallback (default: true)
//	VEGVISIR_PLANNER_ALLNODES_ROWS       - Default row estimate for AllNodesScan (default: 10000)
//	VEGVISIR_PLANNER_LABELSCAN_ROWS      - Default row estimate for NodeByLabelScan (default: 1000)
//	VEGVISIR_PLANNER_INDEXSEEK_ROWS      - Default row estimate for NodeIndexSeek (default: 10)
//	VEGVISIR_PLANNER_FILTER_SELECTIVITY  - Fraction of rows a predicate keeps (default: 0.1)
//
// Example Usage:
//
//	cfg := config.LoadFromEnv()
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all Vegvisir configuration.
type Config struct {
	// Planning tunes the query planner.
	Planning PlanningConfig `yaml:"planning"`
}

// PlanningConfig tunes the planner's search and its default estimates.
type PlanningConfig struct {
	// MaxRounds caps planning rounds. A healthy search finishes far
	// earlier; the cap only catches generator bugs.
	MaxRounds int `yaml:"max_rounds"`
	// CartesianEnabled allows the cartesian-product fallback generator.
	// Hosts that would rather fail than plan unconstrained joins turn
	// this off.
	CartesianEnabled bool `yaml:"cartesian_enabled"`
	// AllNodesRows is the row estimate for AllNodesScan when the
	// catalog has no node count.
	AllNodesRows float64 `yaml:"all_nodes_rows"`
	// LabelScanRows is the row estimate for NodeByLabelScan when the
	// catalog has no label count.
	LabelScanRows float64 `yaml:"label_scan_rows"`
	// IndexSeekRows is the row estimate for NodeIndexSeek.
	IndexSeekRows float64 `yaml:"index_seek_rows"`
	// FilterSelectivity is the fraction of rows one predicate keeps.
	FilterSelectivity float64 `yaml:"filter_selectivity"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Planning: PlanningConfig{
			MaxRounds:         64,
			CartesianEnabled:  true,
			AllNodesRows:      10000,
			LabelScanRows:     1000,
			IndexSeekRows:     10,
			FilterSelectivity: 0.1,
		},
	}
}

// LoadFromEnv builds a configuration from defaults overridden by
// environment variables. Unparseable values fall back to the default
// rather than failing, matching how container entrypoints expect config
// loading to behave; Validate catches out-of-range results.
func LoadFromEnv() *Config {
	cfg := Default()
	applyEnv(cfg)
	return cfg
}

// LoadFromFile reads a YAML config file, then applies environment
// overrides on top.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	applyEnv(cfg)
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	p := c.Planning
	if p.MaxRounds <= 0 {
		return fmt.Errorf("planner max rounds must be positive, got %d", p.MaxRounds)
	}
	if p.AllNodesRows <= 0 || p.LabelScanRows <= 0 || p.IndexSeekRows <= 0 {
		return fmt.Errorf("row estimates must be positive")
	}
	if p.FilterSelectivity <= 0 || p.FilterSelectivity > 1 {
		return fmt.Errorf("filter selectivity must be in (0, 1], got %g", p.FilterSelectivity)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v, ok := envInt("VEGVISIR_PLANNER_MAX_ROUNDS"); ok {
		cfg.Planning.MaxRounds = v
	}
	if v, ok := envBool("VEGVISIR_PLANNER_CARTESIAN_ENABLED"); ok {
		cfg.Planning.CartesianEnabled = v
	}
	if v, ok := envFloat("VEGVISIR_PLANNER_ALLNODES_ROWS"); ok {
		cfg.Planning.AllNodesRows = v
	}
	if v, ok := envFloat("VEGVISIR_PLANNER_LABELSCAN_ROWS"); ok {
		cfg.Planning.LabelScanRows = v
	}
	if v, ok := envFloat("VEGVISIR_PLANNER_INDEXSEEK_ROWS"); ok {
		cfg.Planning.IndexSeekRows = v
	}
	if v, ok := envFloat("VEGVISIR_PLANNER_FILTER_SELECTIVITY"); ok {
		cfg.Planning.FilterSelectivity = v
	}
}

func envInt(name string) (int, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

func envFloat(name string) (float64, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envBool(name string) (bool, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	default:
		return false, false
	}
}
