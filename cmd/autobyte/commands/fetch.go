package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"autobyte/lib/textutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var fetchMax *int
var fetchJson *bool

func init() {
	fetchMax = fetchCmd.Flags().Int("max", 0, "Maximum number of products to fetch.")
	fetchJson = fetchCmd.Flags().Bool("json", false, "Print the ranking as JSON instead of a table.")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [--max <n>] [--json]",
	Short: "Fetches the best-sellers ranking and prints it without building anything.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		if *fetchMax > 0 {
			cfg.MaxItems = *fetchMax
		}

		client, err := newScrapeClient(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		// unlike the build path this surfaces fetch errors, it is the
		// diagnostic surface for selector drift
		products, err := client.Fetch(cmd.Context(), cfg.maxItems())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		if err := printRanking(os.Stdout, products, *fetchJson); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	},
}

type rankingEntry struct {
	Rank    int    `json:"rank"`
	Product string `json:"product"`
	Slug    string `json:"slug"`
}

func printRanking(out io.Writer, products []string, asJson bool) error {
	entries := make([]rankingEntry, 0, len(products))
	for i, p := range products {
		entries = append(entries, rankingEntry{
			Rank:    i + 1,
			Product: p,
			Slug:    textutil.Slugify(p),
		})
	}

	if asJson {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Product", "Slug"})

	for _, e := range entries {
		t.AppendRow(table.Row{e.Rank, e.Product, e.Slug})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
