package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/nanotasks/internal/config"
	"github.com/arthur-debert/nanotasks/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the task list over HTTP",
	Long: `Serve the session's task list as a JSON API until interrupted.

Examples:
  nanotasks serve
  nanotasks serve --addr 127.0.0.1:9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return web.NewServer(session).Run(ctx, session.Config.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", config.Default().Addr, "Address to listen on")
}
