package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var debugHttp *string

var rootCmd = &cobra.Command{
	Use:   "autobyte",
	Short: "autobyte scrapes the best-sellers ranking and generates a static review site.",
	// running the bare binary is the whole pipeline: fetch, fall back
	// to samples on any failure, build
	Run: runBuild,
}

func init() {
	debugHttp = rootCmd.PersistentFlags().String(
		"debug-http", "",
		"Dump every HTTP exchange of the scrape to files under this directory.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
