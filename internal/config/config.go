package config

import (
	"time"

	"github.com/pagemount/pagemount/internal/domain"
	"github.com/pagemount/pagemount/internal/utils"
)

// Config represents the application configuration
type Config struct {
	Embed   EmbedConfig   `mapstructure:"embed" yaml:"embed" json:"embed"`
	Fetch   FetchConfig   `mapstructure:"fetch" yaml:"fetch" json:"fetch"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// EmbedConfig contains the embed pipeline settings
type EmbedConfig struct {
	// BaseURL is the origin/path prefix under which all published assets
	// are served. Required; the pipeline refuses to start without it.
	BaseURL           string `mapstructure:"base_url" yaml:"base_url" json:"base_url"`
	ContainerSelector string `mapstructure:"container_selector" yaml:"container_selector" json:"container_selector"`

	// ContainerID is translated to "#<id>" on ContainerSelector.
	//
	// Deprecated: use ContainerSelector.
	ContainerID string `mapstructure:"container_id" yaml:"container_id" json:"container_id"`

	MountStrategy string `mapstructure:"mount_strategy" yaml:"mount_strategy" json:"mount_strategy"`
	ManifestPath  string `mapstructure:"manifest_path" yaml:"manifest_path" json:"manifest_path"`
	ShowErrors    bool   `mapstructure:"show_errors" yaml:"show_errors" json:"show_errors"`
	VerifyAssets  bool   `mapstructure:"verify_assets" yaml:"verify_assets" json:"verify_assets"`

	// Heuristic knobs; defaults follow Vite output conventions.
	EntryPrefix  string `mapstructure:"entry_prefix" yaml:"entry_prefix" json:"entry_prefix"`
	MainMarker   string `mapstructure:"main_marker" yaml:"main_marker" json:"main_marker"`
	SourcePrefix string `mapstructure:"source_prefix" yaml:"source_prefix" json:"source_prefix"`
}

// FetchConfig contains HTTP client settings
type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent" json:"user_agent"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Normalize fills empty fields with defaults and translates the deprecated
// container ID field. Callers supply only what they want to override; the
// result is the fully populated configuration the pipeline runs against.
func (c *Config) Normalize(logger *utils.Logger) {
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	e := &c.Embed

	if e.ContainerID != "" {
		if e.ContainerSelector != "" {
			logger.Warn().
				Str("container_id", e.ContainerID).
				Msg("Both container_selector and deprecated container_id set, ignoring container_id")
		} else {
			logger.Warn().
				Str("container_id", e.ContainerID).
				Msg("container_id is deprecated, use container_selector")
			e.ContainerSelector = "#" + e.ContainerID
		}
		e.ContainerID = ""
	}

	if e.ContainerSelector == "" {
		e.ContainerSelector = DefaultContainerSelector
	}
	if e.MountStrategy == "" {
		e.MountStrategy = DefaultMountStrategy
	}
	if e.ManifestPath == "" {
		e.ManifestPath = DefaultManifestPath
	}
	if e.EntryPrefix == "" {
		e.EntryPrefix = DefaultEntryPrefix
	}
	if e.MainMarker == "" {
		e.MainMarker = DefaultMainMarker
	}
	if e.SourcePrefix == "" {
		e.SourcePrefix = DefaultSourcePrefix
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// Validate checks required fields. A missing base URL is the single fatal
// configuration error kind; it is raised before any document or network
// operation.
func (c *Config) Validate() error {
	if c.Embed.BaseURL == "" {
		return domain.NewConfigError("base_url", domain.ErrMissingBaseURL)
	}
	return nil
}
