package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultIndexer is the indexer command used when nothing is configured.
const DefaultIndexer = "cindex"

// DefaultTimeout bounds every external indexer invocation.
const DefaultTimeout = 30 * time.Second

// Config holds the vectra runtime configuration.
type Config struct {
	// Indexer is the external indexer command name or path.
	Indexer string `yaml:"indexer"`

	// Timeout bounds each indexer invocation. A hung indexer fails the
	// corresponding request instead of blocking it forever.
	Timeout time.Duration `yaml:"timeout"`
}

// fileConfig is the YAML shape of the optional config file.
type fileConfig struct {
	Indexer        string `yaml:"indexer"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Load builds the configuration from the optional YAML file named by
// VECTRA_CONFIG, then applies VECTRA_INDEXER and VECTRA_TIMEOUT
// environment overrides on top.
func Load() (Config, error) {
	cfg := Config{
		Indexer: DefaultIndexer,
		Timeout: DefaultTimeout,
	}

	if path := os.Getenv("VECTRA_CONFIG"); path != "" {
		fc, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		if fc.Indexer != "" {
			cfg.Indexer = fc.Indexer
		}
		if fc.TimeoutSeconds > 0 {
			cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
		}
	}

	if v := os.Getenv("VECTRA_INDEXER"); v != "" {
		cfg.Indexer = v
	}
	if v := os.Getenv("VECTRA_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("VECTRA_TIMEOUT: expected a positive number of seconds, got %q", v)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return fc, nil
}
