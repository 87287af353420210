package config

// Default values
const (
	DefaultContainerSelector = "#root"
	DefaultMountStrategy     = "first"
	DefaultManifestPath      = "/.vite/manifest.json"
	DefaultShowErrors        = true
	DefaultVerifyAssets      = true

	// Vite output conventions
	DefaultEntryPrefix  = "index"
	DefaultMainMarker   = "main"
	DefaultSourcePrefix = "src/"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Embed: EmbedConfig{
			ContainerSelector: DefaultContainerSelector,
			MountStrategy:     DefaultMountStrategy,
			ManifestPath:      DefaultManifestPath,
			ShowErrors:        DefaultShowErrors,
			VerifyAssets:      DefaultVerifyAssets,
			EntryPrefix:       DefaultEntryPrefix,
			MainMarker:        DefaultMainMarker,
			SourcePrefix:      DefaultSourcePrefix,
		},
		Fetch: FetchConfig{
			Timeout:   0,
			UserAgent: "pagemount",
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
