package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagemount/pagemount/internal/app"
	"github.com/pagemount/pagemount/internal/config"
	"github.com/pagemount/pagemount/internal/fetcher"
	"github.com/pagemount/pagemount/internal/manifest"
	"github.com/pagemount/pagemount/internal/resolve"
	"github.com/pagemount/pagemount/internal/utils"
	"github.com/pagemount/pagemount/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	profileFile string
	verbose     bool
	log         *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pagemount [host-file]",
	Short: "Embed a manifest-described frontend bundle into a host page",
	Long: `Pagemount mounts a prebuilt, manifest-described application bundle into an
arbitrary host HTML page, resolving every asset reference against a
configurable base origin.

It fetches the build manifest from the base URL, picks the entry script and
stylesheet through ordered fallback heuristics, injects them in
stylesheet-then-script order, and rewrites relatively addressed asset paths
so they resolve through the same base.

The host page is read from the given file, or from stdin when no file is
given; the transformed page is written to --output or stdout.`,
	Version: version.Short(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.pagemount/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile", "", "per-site embed profile (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.PersistentFlags().StringP("base-url", "b", "", "Base URL the bundle is served from (required)")
	rootCmd.PersistentFlags().String("container", config.DefaultContainerSelector, "CSS selector for the mount container(s)")
	rootCmd.PersistentFlags().String("container-id", "", "Mount container element ID (deprecated, use --container)")
	rootCmd.PersistentFlags().String("mount-strategy", config.DefaultMountStrategy, "Container selection strategy: first, last, or all")
	rootCmd.PersistentFlags().String("manifest-path", config.DefaultManifestPath, "Manifest path relative to the base URL")
	rootCmd.PersistentFlags().Bool("show-errors", config.DefaultShowErrors, "Render a fallback panel into containers on failure")
	rootCmd.PersistentFlags().Bool("verify-assets", config.DefaultVerifyAssets, "Verify injected asset URLs are retrievable")
	rootCmd.PersistentFlags().String("entry-prefix", config.DefaultEntryPrefix, "Recognized entry output-file name prefix")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Request timeout (0 = none)")
	rootCmd.PersistentFlags().String("user-agent", "pagemount", "Custom User-Agent")
	rootCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")

	_ = viper.BindPFlag("embed.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("embed.container_selector", rootCmd.PersistentFlags().Lookup("container"))
	_ = viper.BindPFlag("embed.container_id", rootCmd.PersistentFlags().Lookup("container-id"))
	_ = viper.BindPFlag("embed.mount_strategy", rootCmd.PersistentFlags().Lookup("mount-strategy"))
	_ = viper.BindPFlag("embed.manifest_path", rootCmd.PersistentFlags().Lookup("manifest-path"))
	_ = viper.BindPFlag("embed.show_errors", rootCmd.PersistentFlags().Lookup("show-errors"))
	_ = viper.BindPFlag("embed.verify_assets", rootCmd.PersistentFlags().Lookup("verify-assets"))
	_ = viper.BindPFlag("embed.entry_prefix", rootCmd.PersistentFlags().Lookup("entry-prefix"))
	_ = viper.BindPFlag("fetch.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("fetch.user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	host, err := readHost(args)
	if err != nil {
		return err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(host))
	if err != nil {
		return fmt.Errorf("failed to parse host page: %w", err)
	}

	pipeline, err := app.NewPipeline(app.PipelineOptions{
		Config: cfg,
		Logger: log,
	})
	if err != nil {
		return err
	}

	result := pipeline.Embed(ctx, doc)

	rendered, err := doc.Html()
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if err := writeOutput(output, rendered); err != nil {
		return err
	}

	if result.Err != nil {
		return result.Err
	}

	log.Info().
		Str("entry", result.EntryKey).
		Str("script", result.ScriptURL).
		Str("stylesheet", result.StylesheetURL).
		Msg("Embed completed")
	return nil
}

// loadConfig resolves configuration: a --profile file when given, otherwise
// the viper layering of defaults, config file, environment, and bound flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if profileFile == "" {
		return config.Load()
	}

	cfg, err := config.LoadProfile(profileFile)
	if err != nil {
		return nil, err
	}

	// Explicitly changed flags still win over the profile.
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.Embed.BaseURL, _ = flags.GetString("base-url")
	}
	if flags.Changed("container") {
		cfg.Embed.ContainerSelector, _ = flags.GetString("container")
	}
	if flags.Changed("container-id") {
		cfg.Embed.ContainerID, _ = flags.GetString("container-id")
	}
	if flags.Changed("mount-strategy") {
		cfg.Embed.MountStrategy, _ = flags.GetString("mount-strategy")
	}
	if flags.Changed("manifest-path") {
		cfg.Embed.ManifestPath, _ = flags.GetString("manifest-path")
	}
	if flags.Changed("show-errors") {
		cfg.Embed.ShowErrors, _ = flags.GetBool("show-errors")
	}
	if flags.Changed("verify-assets") {
		cfg.Embed.VerifyAssets, _ = flags.GetBool("verify-assets")
	}
	if flags.Changed("entry-prefix") {
		cfg.Embed.EntryPrefix, _ = flags.GetString("entry-prefix")
	}
	if flags.Changed("timeout") {
		cfg.Fetch.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("user-agent") {
		cfg.Fetch.UserAgent, _ = flags.GetString("user-agent")
	}

	return cfg, nil
}

// readHost reads the host page from the file argument or stdin
func readHost(args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read host page: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read host page from stdin: %w", err)
	}
	return data, nil
}

// writeOutput writes the transformed page to the output file or stdout
func writeOutput(path, rendered string) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, rendered)
		return err
	}
	if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Fetch a manifest and print how it resolves",
	Long: `Fetches the build manifest from the base URL and prints the chosen entry
point, stylesheet, and derived asset map as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Normalize(utils.NewDefaultLogger())
		if err := cfg.Validate(); err != nil {
			return err
		}

		client := fetcher.NewClient(fetcher.ClientOptions{
			Timeout:   cfg.Fetch.Timeout,
			UserAgent: cfg.Fetch.UserAgent,
		})
		loader := manifest.NewLoader(client, utils.NewDefaultLogger())

		man, err := loader.Fetch(cmd.Context(), cfg.Embed.BaseURL, cfg.Embed.ManifestPath)
		if err != nil {
			return err
		}

		heuristics := resolve.Options{
			EntryPrefix:  cfg.Embed.EntryPrefix,
			MainMarker:   cfg.Embed.MainMarker,
			SourcePrefix: cfg.Embed.SourcePrefix,
		}

		entryKey, entry, err := resolve.SelectEntry(man, heuristics)
		if err != nil {
			return err
		}
		stylesheet, _ := resolve.SelectStylesheet(man, entry, heuristics)

		report := struct {
			EntryKey   string            `json:"entry_key"`
			Script     string            `json:"script"`
			Stylesheet string            `json:"stylesheet,omitempty"`
			Assets     map[string]string `json:"assets"`
		}{
			EntryKey:   entryKey,
			Script:     resolve.JoinBaseURL(cfg.Embed.BaseURL, entry.File),
			Stylesheet: stylesheet,
			Assets:     resolve.BuildAssetMap(man, cfg.Embed.SourcePrefix),
		}
		if report.Stylesheet != "" {
			report.Stylesheet = resolve.JoinBaseURL(cfg.Embed.BaseURL, report.Stylesheet)
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
