package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/config"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/content"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/store"
)

var (
	// Global flags
	verbose bool
	timeout time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "garden-site",
	Short: "Content service for the Dzaferi Gartenbau site",
	Long: `garden-site serves localized marketing content from the content store,
accepts contact form submissions and handles revalidation webhooks.

Run "garden-site serve" to start the HTTP service.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for one-shot commands")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(revalidateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogger installs the JSON slog handler as default
func setupLogger(level slog.Level) {
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// storeClients builds the public read client and the token-carrying privileged client
func storeClients(cfg *config.Config) (*store.Client, *store.WriteClient) {
	storeCfg := store.Config{
		ProjectID:  cfg.Store.ProjectID,
		Dataset:    cfg.Store.Dataset,
		APIVersion: cfg.Store.APIVersion,
		APIHost:    cfg.Store.APIHost,
		UseCDN:     cfg.Store.UseCDN,
	}
	return store.NewClient(storeCfg), store.NewWriteClient(storeCfg, cfg.Store.WriteToken)
}

func newFetcher(cfg *config.Config, public *store.Client, privileged *store.WriteClient) *content.Fetcher {
	opts := []content.Option{content.WithTimeout(cfg.Store.FetchTimeout)}
	if cfg.Store.WriteToken != "" {
		opts = append(opts, content.WithPrivileged(privileged))
	} else {
		slog.Warn("no store write token configured, privileged reads use the public client")
	}
	return content.NewFetcher(public, opts...)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg.LogLevel)
	return cfg, nil
}
