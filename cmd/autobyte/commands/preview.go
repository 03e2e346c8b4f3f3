package commands

import (
	"net/http"

	"autobyte/lib/sitegen"
	"autobyte/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var previewPort *int

func init() {
	previewPort = previewCmd.Flags().Int("port", 8080, "Port to serve the site on.")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [--port <port>]",
	Short: "Serves the generated site locally.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		dir := cfg.OutputDir
		if dir == "" {
			dir = sitegen.DefaultOutputDir
		}

		serviceutil.StartHttpServer(*previewPort, http.FileServer(http.Dir(dir)))
	},
}
