package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the working-directory config location.
const LocalConfigPath = "configs/tank.yaml"

// LoadTank loads Tank Shooter configuration.
// Search order: customPath -> ~/.tank/configs/tank.yaml -> ./configs/tank.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial files only override what they name.
// Only an explicit customPath can produce an error; broken implicit files are skipped.
func LoadTank(customPath string) (TankConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TankConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TankConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("tank.yaml"), LocalConfigPath}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (TankConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TankConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return TankConfig{}, err
	}
	return cfg, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hardcoded config.
func embeddedDefault() TankConfig {
	cfg := DefaultTankConfig()
	if err := yaml.Unmarshal(defaultTankYAML, &cfg); err != nil {
		return DefaultTankConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tank", "configs", filename)
}
