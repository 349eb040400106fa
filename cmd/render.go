package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/recordingpage/internal/config"
	"github.com/teemow/recordingpage/internal/page"
	"github.com/teemow/recordingpage/internal/recordings"
	"github.com/teemow/recordingpage/internal/zoom"
)

func newRenderCmd() *cobra.Command {
	var (
		output      string
		displayMode string
		timezone    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the recordings page once and exit",
		Long: `Fetch the configured meeting's cloud recordings from Zoom and write the
rendered HTML page to stdout or a file.

Useful for publishing the page as a static file or for checking a
deployment's configuration without starting the server. The same
environment variables as for serve apply.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			if cmd.Flags().Changed("display-mode") {
				cfg.DisplayMode = config.DisplayMode(displayMode)
			}
			if cmd.Flags().Changed("timezone") {
				cfg.Timezone = timezone
			}

			return runRender(cmd.Context(), cfg, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the page to this file instead of stdout")
	cmd.Flags().StringVar(&displayMode, "display-mode", "", "Display mode: plain or rich. Overrides DISPLAY_MODE.")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone for timestamps. Overrides DISPLAY_TIMEZONE.")

	return cmd
}

func runRender(ctx context.Context, cfg *config.Config, output string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderer, err := page.NewRenderer(cfg.DisplayMode, cfg.Timezone)
	if err != nil {
		return fmt.Errorf("failed to create page renderer: %w", err)
	}

	client, err := zoom.NewClient(cfg.AccountID, cfg.ClientID, cfg.ClientSecret)
	if err != nil {
		return fmt.Errorf("failed to create Zoom client: %w", err)
	}

	token, err := client.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to get Zoom token: %w", err)
	}

	meetings, err := client.ListUserRecordings(ctx, token, cfg.UserID, cfg.PageSize)
	if err != nil {
		return fmt.Errorf("failed to fetch recordings from Zoom: %w", err)
	}

	matched := recordings.MatchMeetings(meetings, cfg.MeetingID)
	data := renderer.BuildPage(cfg.MeetingID, matched)

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	return renderer.Render(w, data)
}
