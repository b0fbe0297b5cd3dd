// Package fallback sequences source adapters into per-branch priority
// chains and resolves payloads through them.
package fallback

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config maps each branch to its ordered adapter chain, per category.
// Order is priority order: real official API first, synthetic last. The
// mapping is explicit configuration rather than hard-coded branching so the
// chains stay declarative and testable.
type Config struct {
	Expenses map[string][]string `yaml:"expenses"`
	Staff    map[string][]string `yaml:"staff"`
}

// DefaultConfig is the built-in chain configuration, used when no config
// file is provided.
func DefaultConfig() Config {
	return Config{
		Expenses: map[string][]string{
			"federal-deputy":  {"camara-api"},
			"federal-senator": {"senado-mirror", "senado-scrape"},
		},
		Staff: map[string][]string{
			"federal-deputy":  {"camara-staff"},
			"federal-senator": {"transparencia-csv"},
			"state-deputy":    {"assembleia"},
			"mayor":           {"municipio-registry"},
			"councilor":       {"municipio-registry"},
		},
	}
}

// LoadConfig reads a chain configuration from a yaml file, falling back to
// DefaultConfig when path is empty.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read sources config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse sources config: %w", err)
	}

	if len(cfg.Expenses) == 0 && len(cfg.Staff) == 0 {
		return Config{}, fmt.Errorf("sources config %s defines no chains", path)
	}

	return cfg, nil
}
