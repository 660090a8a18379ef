package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load loads the client configuration.
// Search order: customPath -> ~/.shop/config.yaml -> ./configs/shop.yaml -> embedded default.
// Values missing from a file keep their defaults. SHOP_* environment variables
// (optionally from a .env file in the working directory) override the result.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
	} else if !loadFirst(&cfg, userConfigPath("config.yaml"), filepath.Join("configs", "shop.yaml")) {
		if err := yaml.Unmarshal(defaultShopYAML, &cfg); err != nil {
			cfg = Default()
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadFirst unmarshals the first readable, parseable file into cfg.
func loadFirst(cfg *Config, paths ...string) bool {
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		candidate := *cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			*cfg = candidate
			return true
		}
	}
	return false
}

// loadDotEnv loads KEY=value pairs into the process environment.
// A missing file is not an error; existing variables win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any SHOP_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	err := envdecode.Decode(cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return fmt.Errorf("failed to apply environment: %w", err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shop", filename)
}
