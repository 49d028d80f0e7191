package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSandbox loads the sandbox configuration.
// Search order: customPath -> ~/.tetra/configs/sandbox.yaml -> ./configs/sandbox.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadSandbox(customPath string) (SandboxConfig, error) {
	cfg := DefaultSandboxConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("sandbox.yaml"), filepath.Join("configs", "sandbox.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSandboxYAML, &cfg); err != nil {
		return DefaultSandboxConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, broken or invalid files
// are skipped.
func tryLoad(path string) (SandboxConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SandboxConfig{}, false
	}
	cfg := DefaultSandboxConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SandboxConfig{}, false
	}
	if cfg.Validate() != nil {
		return SandboxConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetra", "configs", filename)
}
