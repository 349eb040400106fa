package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/recordingpage/internal/config"
	"github.com/teemow/recordingpage/internal/instrumentation"
	"github.com/teemow/recordingpage/internal/logging"
	"github.com/teemow/recordingpage/internal/page"
	"github.com/teemow/recordingpage/internal/server"
	"github.com/teemow/recordingpage/internal/zoom"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode   bool
		httpAddr    string
		displayMode string
		timezone    string
		// Metrics server configuration
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the recordings page HTTP server",
		Long: `Start an HTTP server that renders the recordings page on every request.

Each request performs a fresh Zoom server-to-server OAuth token grant and
fetches the first page of the configured user's cloud recordings. Nothing is
cached between requests, so a newly finished recording appears on the next
page load.

Required environment variables:
  ZOOM_ACCOUNT_ID      Zoom account id for the account_credentials grant
  ZOOM_CLIENT_ID       OAuth client id
  ZOOM_CLIENT_SECRET   OAuth client secret
  MEETING_ID           Numeric id of the meeting to show

Optional environment variables:
  ZOOM_USER_ID         Recordings owner (default: "me")
  DISPLAY_MODE         "plain" or "rich" (default: "rich")
  DISPLAY_TIMEZONE     IANA zone for timestamps (default: "America/New_York")

A server started with incomplete credentials still comes up; requests answer
with a 500 naming the missing variables until the deployment is fixed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			if cmd.Flags().Changed("display-mode") {
				cfg.DisplayMode = config.DisplayMode(displayMode)
			}
			if cmd.Flags().Changed("timezone") {
				cfg.Timezone = timezone
			}

			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}

			return runServe(cfg, httpAddr, debugMode, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address")
	cmd.Flags().StringVar(&displayMode, "display-mode", "", "Display mode: plain or rich. Overrides DISPLAY_MODE.")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone for timestamps. Overrides DISPLAY_TIMEZONE.")

	// Metrics server flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(cfg *config.Config, httpAddr string, debugMode bool, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	setupLogging(debugMode)

	// Load metrics config from environment if not set via flags
	if metricsConfig.Enabled {
		if os.Getenv("METRICS_ENABLED") == "false" {
			metricsConfig.Enabled = false
		}
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == server.DefaultMetricsAddr {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	// An incomplete configuration is not fatal: the handler answers every
	// request with the missing-variables message until it is fixed.
	if err := cfg.Validate(); err != nil {
		slog.Warn("configuration incomplete, requests will fail until the environment is fixed",
			logging.Err(err))
	}

	renderer, err := page.NewRenderer(cfg.DisplayMode, cfg.Timezone)
	if err != nil {
		return fmt.Errorf("failed to create page renderer: %w", err)
	}

	// The client can only be built with credentials present. Without them
	// the handler rejects requests before ever touching the client.
	var client *zoom.Client
	if cfg.AccountID != "" && cfg.ClientID != "" && cfg.ClientSecret != "" {
		client, err = zoom.NewClient(cfg.AccountID, cfg.ClientID, cfg.ClientSecret)
		if err != nil {
			return fmt.Errorf("failed to create Zoom client: %w", err)
		}
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			slog.Error("error during instrumentation shutdown", logging.Err(err))
		}
	}()

	serverContext := server.NewServerContext(shutdownCtx, cfg, client, renderer)
	defer serverContext.Shutdown()

	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
	}

	// Start metrics server if enabled
	var metricsServer *server.MetricsServer
	if metricsConfig.Enabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			slog.Info("metrics server started", "addr", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during metrics server shutdown", logging.Err(err))
			}
		}()
	}

	handler := server.NewPageHandler(cfg, client, renderer, slog.Default(), serverContext.Metrics())

	mux := http.NewServeMux()
	mux.Handle("/", handler)

	healthChecker := server.NewHealthChecker(serverContext)
	healthChecker.RegisterHealthEndpoints(mux)

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	slog.Info("starting recordings page server",
		"addr", httpAddr,
		logging.MeetingID(cfg.MeetingID),
		"display_mode", string(cfg.DisplayMode))

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Info("shutdown signal received, stopping HTTP server")
		healthChecker.SetReady(false)
		serverContext.Shutdown()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer stopCancel()
		if err := httpServer.Shutdown(stopCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
	}

	slog.Info("HTTP server gracefully stopped")
	return nil
}

// setupLogging installs the default slog logger at the requested level.
func setupLogging(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
