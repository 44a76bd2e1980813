// SPDX-License-Identifier: MIT

package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/qwalk/internal/config"
	"github.com/katalvlaran/qwalk/internal/metrics"
	"github.com/katalvlaran/qwalk/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /v1/decompose, /v1/walk and /metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(a.cfg, a.log, metrics.New(true)).Run(ctx)
		},
	}

	f := cmd.Flags()
	f.String("addr", config.DefaultServerAddr, "listen address")
	f.String("mode", config.DefaultServerMode, "gin mode (debug, release, test)")
	f.Int("max-vertices", config.DefaultMaxVertices, "largest accepted matrix side")
	f.Duration("shutdown-timeout", config.DefaultShutdownTimeout, "graceful shutdown deadline")
	a.bind(f, map[string]string{
		"server.addr":             "addr",
		"server.mode":             "mode",
		"server.max_vertices":     "max-vertices",
		"server.shutdown_timeout": "shutdown-timeout",
	})

	return cmd
}
