package config

import (
	"os"
	"strconv"

	"innerbag/internal/errors"
)

// Config holds the demo binary's settings, read from the environment.
type Config struct {
	// Seed is the base seed for the deterministic generator.
	Seed uint64
	// SampleCount is the training set size to bag.
	SampleCount int
	// BagCount is the requested number of bootstrap bags; 0 means one flat
	// bag covering the full set.
	BagCount int
	// SubEnsembles > 1 builds that many independent ensembles concurrently,
	// each from a derived seed.
	SubEnsembles int
	// MaxParallel bounds concurrent sub-ensemble builds.
	MaxParallel int64
	// Profile enables ensemble diagnostics output.
	Profile bool
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Seed:         getEnvUint("BAG_SEED", 42),
		SampleCount:  getEnvInt("BAG_SAMPLES", 1000),
		BagCount:     getEnvInt("BAG_COUNT", 16),
		SubEnsembles: getEnvInt("BAG_SUB_ENSEMBLES", 1),
		MaxParallel:  int64(getEnvInt("BAG_MAX_PARALLEL", 4)),
		Profile:      getEnvBool("BAG_PROFILE", true),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SampleCount < 1 {
		return errors.New("CONFIG_INVALID", "BAG_SAMPLES must be at least 1")
	}
	if c.BagCount < 0 {
		return errors.New("CONFIG_INVALID", "BAG_COUNT must not be negative")
	}
	if c.SubEnsembles < 1 {
		return errors.New("CONFIG_INVALID", "BAG_SUB_ENSEMBLES must be at least 1")
	}
	if c.MaxParallel < 1 {
		return errors.New("CONFIG_INVALID", "BAG_MAX_PARALLEL must be at least 1")
	}
	return nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
