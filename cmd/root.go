package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the recordingpage application
var rootCmd = &cobra.Command{
	Use:   "recordingpage",
	Short: "Serves an HTML page with cloud recording links for a Zoom meeting",
	Long: `recordingpage fetches the cloud recordings of a single Zoom meeting via
the Zoom REST API and renders them as a static HTML page with playable links.

It can run as:
  - An HTTP server that renders the page per request (default)
  - A one-shot CLI that renders the page to stdout or a file`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "recordingpage version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRenderCmd())
}
