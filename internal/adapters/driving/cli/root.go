// Package cli provides the medley command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/medley/internal/core/domain"
	"github.com/custodia-labs/medley/internal/core/ports/driving"
	"github.com/custodia-labs/medley/internal/logger"
)

// version is set at build time.
var version = "dev"

// errCatalogNotConfigured is returned when no catalog can be built.
var errCatalogNotConfigured = errors.New("catalog service not configured")

// Options holds the values of the global flags.
type Options struct {
	BaseURL   string
	Profile   string
	ConfigDir string
	LogFile   string
	Verbose   bool
	Demo      bool
}

// SettingsFactory opens the settings store selected by the global flags.
type SettingsFactory func(opts Options) (driving.SettingsService, error)

// CatalogFactory builds the catalog service for resolved settings.
type CatalogFactory func(opts Options, settings domain.Settings) (driving.CatalogService, error)

var (
	options Options

	settingsFactory SettingsFactory
	catalogFactory  CatalogFactory

	// Services, built lazily from the factories or injected by tests.
	settingsService driving.SettingsService
	catalogService  driving.CatalogService

	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "medley",
	Short: "Search a media catalog and explore recommendations",
	Long: `medley searches a media catalog of movies, TV, books and music and
shows recommendations for a selected item, across media types.

Run without a command to start the interactive terminal UI.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLogFile()
	},
	RunE: runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.BaseURL, "base-url", "", "catalog base URL (overrides catalog.base_url)")
	flags.StringVar(&options.Profile, "profile", "", "endpoint profile: production or experimental")
	flags.StringVar(&options.ConfigDir, "config-dir", "", "directory holding config.toml (default ~/.medley)")
	flags.StringVar(&options.LogFile, "log-file", "", "append logs to this file instead of stderr")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&options.Demo, "demo", false, "use the built-in demo catalog instead of the HTTP service")
}

// SetFactories sets how commands build their services.
func SetFactories(settings SettingsFactory, catalog CatalogFactory) {
	settingsFactory = settings
	catalogFactory = catalog
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. Cancelling ctx stops long-running
// commands such as the UI and the MCP server.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(options.Verbose)
	if options.LogFile == "" {
		return nil
	}
	return openLogFile(options.LogFile)
}

func openLogFile(path string) error {
	closeLogFile()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logFile = f
	logger.SetOutput(f)
	return nil
}

func closeLogFile() {
	if logFile == nil {
		return
	}
	logger.SetOutput(os.Stderr)
	logFile.Close() //nolint:errcheck
	logFile = nil
}

// settings returns the settings service, opening it on first use.
func settings() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	if settingsFactory == nil {
		return nil, errors.New("settings service not configured")
	}
	svc, err := settingsFactory(options)
	if err != nil {
		return nil, fmt.Errorf("opening settings: %w", err)
	}
	settingsService = svc
	return svc, nil
}

// resolveSettings returns the stored settings with flag overrides applied.
// Without a settings store the defaults are used.
func resolveSettings() (domain.Settings, error) {
	s := domain.DefaultSettings()
	if svc, err := settings(); err == nil {
		loaded, err := svc.Get()
		if err != nil {
			return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
		}
		s = loaded
	} else {
		logger.Debug("Using default settings: %v", err)
	}

	s = applyFlags(s, options)
	if err := s.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

// applyFlags overrides settings with the global flags that were given.
func applyFlags(s domain.Settings, opts Options) domain.Settings {
	if v := strings.TrimSpace(opts.BaseURL); v != "" {
		s.BaseURL = v
	}
	if v := strings.TrimSpace(opts.Profile); v != "" {
		s.Profile = domain.Profile(strings.ToLower(v))
	}
	return s
}

// catalog returns the catalog service, building it on first use.
func catalog() (driving.CatalogService, error) {
	if catalogService != nil {
		return catalogService, nil
	}
	if catalogFactory == nil {
		return nil, errCatalogNotConfigured
	}
	s, err := resolveSettings()
	if err != nil {
		return nil, err
	}
	svc, err := catalogFactory(options, s)
	if err != nil {
		return nil, fmt.Errorf("creating catalog: %w", err)
	}
	catalogService = svc
	return svc, nil
}

// resolvedSettings serves flag-adjusted settings to the UI while keeping
// writes on the underlying store.
type resolvedSettings struct {
	driving.SettingsService
	settings domain.Settings
}

func (r resolvedSettings) Get() (domain.Settings, error) {
	return r.settings, nil
}
