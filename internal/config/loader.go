package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const t1024ID = "1024"

// LoadT1024 loads 1024 configuration.
// Search order: customPath -> ~/.arcade/configs/1024.yaml -> ./configs/1024.yaml -> embedded default
func LoadT1024(customPath string) (T1024Config, error) {
	// Start from defaults so partial files keep the remaining keys.
	cfg := DefaultT1024Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(t1024ID + ".yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultT1024Config()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", t1024ID+".yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultT1024Config()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(default1024YAML, &cfg); err != nil {
		return DefaultT1024Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal renders cfg as YAML, as printed by the config command.
func Marshal(cfg T1024Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
