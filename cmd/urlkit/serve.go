package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/urlkit/internal/api"
	"github.com/dmitrymomot/urlkit/pkg/httpserver"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the helpers as a JSON API",
		Long: `Serve starts the HTTP API. It is configured through the environment
(HTTP_ADDR, HTTP_*_TIMEOUT, RATE_LIMIT_*, DEFAULT_WHITELIST, ...) and stops
gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}
	cmd.Flags().String("addr", "", "Listen address, overrides HTTP_ADDR")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []httpserver.Option{httpserver.WithLogger(a.Log)}
	if addr != "" {
		opts = append(opts, httpserver.WithAddr(addr))
	}
	srv := httpserver.NewFromConfig(a.Config.HTTP, opts...)

	return srv.Run(ctx, api.NewService(a).Handle())
}
