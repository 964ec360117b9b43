package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/pkg/client"
)

var (
	revalidateURL    string
	revalidateSecret string
	revalidateTag    string
)

// revalidateCmd calls the webhook of a running service
var revalidateCmd = &cobra.Command{
	Use:   "revalidate",
	Short: "Trigger cache revalidation on a running service",
	Long: `Sends the revalidation webhook to a running garden-site service.
Without --tag the service invalidates its default tags.`,
	Args: cobra.NoArgs,
	RunE: runRevalidate,
}

func init() {
	revalidateCmd.Flags().StringVar(&revalidateURL, "url", "http://localhost:3000", "Base URL of the service")
	revalidateCmd.Flags().StringVar(&revalidateSecret, "secret", "", "Revalidation secret")
	revalidateCmd.Flags().StringVar(&revalidateTag, "tag", "", "Cache tag to invalidate")
	_ = revalidateCmd.MarkFlagRequired("secret")
}

func runRevalidate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	c := client.NewClient(revalidateURL, client.WithTimeout(timeout))
	res, err := c.Revalidate(ctx, revalidateSecret, revalidateTag)
	if err != nil {
		return fmt.Errorf("revalidation failed: %w", err)
	}

	tags := res.Tags
	if res.Tag != "" {
		tags = []string{res.Tag}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "revalidated %v at %d\n", tags, res.Now)
	return nil
}
