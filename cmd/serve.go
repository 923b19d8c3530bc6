package cmd

import (
	"os/signal"
	"syscall"

	"scurry-locator/infrastructure/httpapi"

	"github.com/spf13/cobra"
)

var serveBind string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the location-extraction HTTP API",
	Long: `Start the HTTP server exposing the pipeline:

  POST /extract-locations/    {"url": "<video link>"}

The OPENAI_API_KEY environment variable must be set; a missing key fails
at startup rather than on the first request.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveBind, "bind", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	logger := NewLogger()

	service, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}

	bind := serveBind
	if bind == "" {
		bind = cfg.Server.Bind
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := httpapi.NewServer(bind, service, logger)
	if err := server.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}
