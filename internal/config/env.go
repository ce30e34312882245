package config

import "os"

// Environment overrides
const (
	EnvConfigPath = "KAIJU_CONFIG"
	EnvAssetsDir  = "KAIJU_ASSETS"
)

// GetEnv returns the value of an environment variable or a fallback
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load reads the config named by KAIJU_CONFIG (or DefaultPath) and applies
// the KAIJU_ASSETS directory override.
func Load() (*Config, error) {
	cfg, err := LoadConfig(GetEnv(EnvConfigPath, DefaultPath))
	if err != nil {
		return nil, err
	}
	cfg.Assets.Directory = GetEnv(EnvAssetsDir, cfg.Assets.Directory)
	return cfg, nil
}
