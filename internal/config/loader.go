package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Profile loading errors
var (
	ErrProfileNotFound = errors.New("profile file not found")
	ErrInvalidFormat   = errors.New("invalid profile format")
	ErrUnsupportedExt  = errors.New("unsupported profile extension")
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pagemount"
	}
	return filepath.Join(home, ".pagemount")
}

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	v := viper.GetViper()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (PAGEMOUNT_*)
	v.SetEnvPrefix("PAGEMOUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadProfile reads a per-site embed profile from disk, parsed by
// extension. Profile values land on top of the defaults; flag and
// environment layering still apply afterwards through the caller.
func LoadProfile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	return ParseProfile(data, filepath.Ext(path))
}

// ParseProfile parses an embed profile from raw bytes
func ParseProfile(data []byte, ext string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	return cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("embed.container_selector", DefaultContainerSelector)
	v.SetDefault("embed.mount_strategy", DefaultMountStrategy)
	v.SetDefault("embed.manifest_path", DefaultManifestPath)
	v.SetDefault("embed.show_errors", DefaultShowErrors)
	v.SetDefault("embed.verify_assets", DefaultVerifyAssets)
	v.SetDefault("embed.entry_prefix", DefaultEntryPrefix)
	v.SetDefault("embed.main_marker", DefaultMainMarker)
	v.SetDefault("embed.source_prefix", DefaultSourcePrefix)

	v.SetDefault("fetch.timeout", 0)
	v.SetDefault("fetch.user_agent", "pagemount")

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
