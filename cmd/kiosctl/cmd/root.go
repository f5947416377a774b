package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/spf13/cobra"

	"github.com/punyakios/go-kios-client/cmd/setup"
	"github.com/punyakios/go-kios-client/internal/biometric"
	"github.com/punyakios/go-kios-client/internal/common/graceful"
	"github.com/punyakios/go-kios-client/internal/common/idgenerator"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "kiosctl",
	Short:         "kiosctl drives the kiosk client core against a storefront API",
	Long:          `kiosctl loads provider catalogs through the persistent cache and sends biometric-gated orders.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	flagConfigDir = "config-dir"
	flagEnvFile   = "env-file"
	flagRefresh   = "refresh"
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var authErr *biometric.AuthFailedError
		if !errors.As(err, &authErr) || !authErr.Silent {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(flagConfigDir, "", "extra directory searched for config.{yaml,json}")
	rootCmd.PersistentFlags().String(flagEnvFile, "", "dotenv file loaded before the environment")
}

type runFunc func(ctx context.Context, ccmd *cobra.Command, s *setup.Setup, args []string) error

// withSetup builds the client core for one command and tears it down afterwards.
func withSetup(fn runFunc) func(*cobra.Command, []string) error {
	return func(ccmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(ccmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		device := newTerminalDevice(ccmd.InOrStdin(), ccmd.ErrOrStderr())
		s, stoppers, err := setup.Init(ccmd.Name(), device, loadOptions(ccmd)...)
		if err != nil {
			graceful.StopProcess(config.DefaultGracefulTimeout, stoppers...)
			return fmt.Errorf("failed to setup app: %w", err)
		}

		defer graceful.StopProcess(gracefulTimeout(s.Config), stoppers...)

		ctx = xlog.WithCorrelationID(ctx, idgenerator.New().Generate("KIOS", "CLI"))
		if s.NewRelic != nil {
			txn := s.NewRelic.StartTransaction(ccmd.CommandPath())
			defer txn.End()
			ctx = newrelic.NewContext(ctx, txn)
		}

		return fn(ctx, ccmd, s, args)
	}
}

func gracefulTimeout(cfg config.Config) time.Duration {
	if cfg.App.GracefulTimeout <= 0 {
		return config.DefaultGracefulTimeout
	}
	return cfg.App.GracefulTimeout
}

func loadOptions(ccmd *cobra.Command) []config.LoadOption {
	var opts []config.LoadOption
	if dir, _ := ccmd.Flags().GetString(flagConfigDir); dir != "" {
		opts = append(opts, config.WithConfigFileSearchPaths(dir))
	}
	if file, _ := ccmd.Flags().GetString(flagEnvFile); file != "" {
		opts = append(opts, config.WithEnvFiles(file))
	}
	return opts
}

func printJSON(ccmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(ccmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
