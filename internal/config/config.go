// Package config loads the gloss configuration: a TOML file under the XDG
// config home, optionally overlaid per session by the client's
// initializationOptions.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config carries everything gloss needs at runtime. TOML tags cover the
// config file, JSON tags the initializationOptions overlay. Empty paths
// are resolved against the XDG state home during initialization.
type Config struct {
	Endpoint  string `toml:"endpoint"   json:"endpoint"`
	APIKey    string `toml:"api_key"    json:"api_key"`
	CachePath string `toml:"cache_path" json:"cache_path"`
	WordList  string `toml:"word_list"  json:"word_list"`
	LogFile   string `toml:"log_file"   json:"log_file"`
	Verbosity int    `toml:"verbosity"  json:"verbosity"`
}

var defaultConfig = Config{
	Endpoint:  "http://dict-co.iciba.com/api/dictionary.php",
	APIKey:    "E0F0D336AF47D3797C68372A869BDBC5",
	LogFile:   filepath.Join(os.TempDir(), "gloss.log"),
	Verbosity: 1,
}

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "gloss", "config.toml")
}

// Load reads the TOML file at path. A missing file yields the defaults; a
// file that exists but does not parse is an error.
func Load(path string) (Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Merge overlays src, the client's initializationOptions, onto c.
func (c Config) Merge(src any) (Config, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}

	// only fields present in src will overwrite.
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}

	return c, nil
}
