// Command medley searches a media catalog and shows recommendations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/medley/internal/adapters/driven/catalog/httpclient"
	"github.com/custodia-labs/medley/internal/adapters/driven/catalog/memory"
	"github.com/custodia-labs/medley/internal/adapters/driven/config/file"
	"github.com/custodia-labs/medley/internal/adapters/driving/cli"
	"github.com/custodia-labs/medley/internal/core/domain"
	"github.com/custodia-labs/medley/internal/core/ports/driving"
	"github.com/custodia-labs/medley/internal/core/services"
	"github.com/custodia-labs/medley/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetFactories(openSettings, newCatalog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// openSettings opens the TOML config store in the configured directory.
func openSettings(opts cli.Options) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

// newCatalog wires the catalog service to the HTTP catalog, or to the
// built-in demo catalog with --demo.
func newCatalog(opts cli.Options, s domain.Settings) (driving.CatalogService, error) {
	if opts.Demo {
		logger.Info("Using the built-in demo catalog")
		return services.NewCatalogService(memory.NewDemoCatalog(), s.MediaTypes), nil
	}

	cfg, err := httpclient.ConfigFromSettings(s)
	if err != nil {
		return nil, err
	}
	client, err := httpclient.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("catalog client: %w", err)
	}
	logger.Debug("Catalog %s, profile %s", s.BaseURL, s.Profile)
	return services.NewCatalogService(client, s.MediaTypes), nil
}
