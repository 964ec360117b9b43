package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/queries"
)

var (
	fetchLocale string
	fetchSlug   string
)

// fetchCmd runs a single fetcher against the configured store
var fetchCmd = &cobra.Command{
	Use:   "fetch <collection>",
	Short: "Fetch one content collection and print it as JSON",
	Long: `Runs one locale-resolving fetcher and prints the result.
A collection with no usable content prints null.

Collections: ` + collectionNames(),
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchLocale, "locale", "l", string(i18n.DefaultLocale), "Content locale (en or de)")
	fetchCmd.Flags().StringVar(&fetchSlug, "slug", "", "Slug for the *-by-slug collections")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	public, privileged := storeClients(cfg)
	fetcher := newFetcher(cfg, public, privileged)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	result, err := fetcher.Fetch(ctx, args[0], fetchSlug, i18n.Locale(fetchLocale))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func collectionNames() string {
	var names []string
	for _, q := range queries.All() {
		names = append(names, q.Name)
	}
	return strings.Join(names, ", ")
}
