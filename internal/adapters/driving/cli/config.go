package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/medley/internal/core/domain"
	"github.com/custodia-labs/medley/internal/core/ports/driving"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage catalog and display settings",
	Long: `View and change the settings stored in config.toml.

Keys:
  catalog.base_url              scheme and host of the catalog service
  catalog.profile               production or experimental
  catalog.search_path           override the search endpoint path
  catalog.recommendations_path  override the recommendations endpoint path
  catalog.timeout_seconds       request timeout, 0 disables it
  catalog.requests_per_second   request pacing
  catalog.burst                 requests sent back to back
  ui.media_types                comma separated media types offered
  ui.placeholder_image          image shown for items without one`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of config.toml",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	// Values such as "-1" are positional, not flags.
	configSetCmd.Flags().SetInterspersed(false)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}
	eps, err := s.Endpoints()
	if err != nil {
		return err
	}

	values := settingValues(s, eps)

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	for _, key := range driving.SettingsKeys() {
		cmd.Printf("  %-28s %s\n", key, values[key])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := settings()
	if err != nil {
		return err
	}
	if err := svc.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("setting %s: %w", args[0], err)
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	svc, err := settings()
	if err != nil {
		return err
	}
	cmd.Println(svc.Path())
	return nil
}

// settingValues renders settings keyed by their config key.
func settingValues(s domain.Settings, eps domain.Endpoints) map[string]string {
	types := make([]string, len(s.MediaTypes))
	for i, t := range s.MediaTypes {
		types[i] = t.String()
	}
	return map[string]string{
		driving.KeyBaseURL:             s.BaseURL,
		driving.KeyProfile:             s.Profile.String(),
		driving.KeySearchPath:          eps.Search,
		driving.KeyRecommendationsPath: eps.Recommendations,
		driving.KeyTimeoutSeconds:      strconv.Itoa(int(s.Timeout.Seconds())),
		driving.KeyRequestsPerSecond:   strconv.FormatFloat(s.RequestsPerSecond, 'g', -1, 64),
		driving.KeyBurst:               strconv.Itoa(s.Burst),
		driving.KeyMediaTypes:          strings.Join(types, ","),
		driving.KeyPlaceholderImage:    s.PlaceholderImage,
	}
}
