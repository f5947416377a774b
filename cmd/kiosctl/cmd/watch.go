package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/punyakios/go-kios-client/cmd/setup"
	"github.com/punyakios/go-kios-client/internal/common/graceful"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/deliveries/http"
	"github.com/punyakios/go-kios-client/internal/deliveries/job"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the catalog cache warm and serve health, metrics and cached catalogs",
	Args:  cobra.NoArgs,
	RunE: withSetup(func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, _ []string) error {
		interval, _ := ccmd.Flags().GetDuration("interval")
		addr, _ := ccmd.Flags().GetString("addr")

		refresher := job.NewRefresher(s.Service.Preload, interval)
		server := http.NewHTTPServer(s.Config, addr, s.NewRelic, s.Metrics, s.Service.Catalog, s.Service.Preload)

		xlog.Info(ctx, "[WATCH]", xlog.String("addr", addr), xlog.Duration("interval", interval))
		graceful.StartProcessAtBackground(refresher.Start(), server.Start())
		graceful.StopProcessAtBackground(ctx, gracefulTimeout(s.Config), server.Stop(), refresher.Stop())
		return nil
	}),
}

func init() {
	watchCmd.Flags().Duration("interval", 30*time.Minute, "time between two preloads, 0 preloads once")
	watchCmd.Flags().String("addr", ":9567", "listen address of the status server")
	rootCmd.AddCommand(watchCmd)
}
