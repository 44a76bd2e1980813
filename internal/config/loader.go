// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override: walk.vertices ↔ QWALK_WALK_VERTICES.
const EnvPrefix = "QWALK"

// knownKeys are registered with empty defaults so that AutomaticEnv can reach
// them during Unmarshal even when no config file mentions them.
var knownKeys = []string{
	"log.level", "log.format", "log.output_paths",
	"spectral.tolerance", "spectral.solver", "spectral.skip_hermitian_check",
	"spectral.hermitian_eps", "spectral.verify_threshold",
	"walk.graph", "walk.vertices", "walk.matrix", "walk.start",
	"walk.t_start", "walk.t_end", "walk.step", "walk.workers", "walk.format",
	"server.addr", "server.mode", "server.max_vertices", "server.shutdown_timeout",
}

// NewViper returns a viper instance with the qwalk conventions: YAML files,
// QWALK_ env prefix, "." → "_" key mapping. The CLI binds its flags on it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range knownKeys {
		v.SetDefault(k, nil)
	}

	return v
}

// Load reads the YAML file at path (skipped when path is empty), merges
// QWALK_* overrides, applies defaults and validates.
func Load(path string) (*Config, error) {
	v := NewViper()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}

	return Decode(v)
}

// ReadFile loads path into v; an empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}

	return nil
}

// Decode unmarshals the current viper state, applies defaults and validates.
func Decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
