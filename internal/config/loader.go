package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the configuration source when no file was found.
const SourceEmbedded = "embedded"

// LoadInvaders loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml ->
// ./configs/invaders.yaml -> embedded default.
// A file only overrides the fields it sets. A custom path that cannot be read
// is an error; search-path files that do not exist are skipped.
func LoadInvaders(customPath string) (InvadersConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data, customPath)
		return cfg, customPath, err
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return InvadersConfig{}, "", fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := parse(data, path)
		return cfg, path, err
	}

	return embeddedDefault(), SourceEmbedded, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (InvadersConfig, error) {
	return parse(data, "<input>")
}

func parse(data []byte, name string) (InvadersConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return InvadersConfig{}, fmt.Errorf("config: invalid %s: %w", name, err)
	}
	return cfg, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hardcoded
// defaults if it cannot be parsed.
func embeddedDefault() InvadersConfig {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig()
	}
	return cfg
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath("invaders.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "invaders.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}
