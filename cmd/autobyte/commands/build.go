package commands

import (
	"context"
	"log/slog"

	"autobyte/lib/sitegen"
	"autobyte/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var sampleProducts = []string{
	"Sample Product A",
	"Sample Product B",
	"Sample Product C",
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetches the best-sellers ranking and builds the review site.",
	Run:   runBuild,
}

func runBuild(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	products := fetchOrFallback(cmd.Context(), cfg)

	builder := sitegen.Builder{
		OutputDir:    cfg.OutputDir,
		AffiliateTag: cfg.AffiliateTag,
	}
	records, err := builder.Build(cmd.Context(), products)
	if err != nil {
		serviceutil.Fatal("failed to build site", err)
	}

	slog.Info("done", "posts", len(records))
}

// fetchOrFallback never fails: any error on the fetch path, whatever
// its cause, degrades to the fixed sample list. The builder cannot
// tell which path produced its input.
func fetchOrFallback(ctx context.Context, cfg Config) []string {
	client, err := newScrapeClient(cfg)
	if err != nil {
		slog.Warn("scrape client unavailable, using sample products", "err", err)
		return sampleProducts
	}

	products, err := client.Fetch(ctx, cfg.maxItems())
	if err != nil {
		slog.Warn("fetch failed, using sample products", "err", err)
		return sampleProducts
	}
	slog.Info("fetched best sellers", "count", len(products))
	return products
}
