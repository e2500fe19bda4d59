package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/autofix-handedness/internal/config"
	"github.com/oshokin/autofix-handedness/internal/service/server"
	"github.com/oshokin/autofix-handedness/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// worldFile path where the glove collection is persisted.
	worldFile string

	// rootCmd represents the base command for running the host daemon.
	rootCmd = &cobra.Command{
		Use:   "handedness-host [listen-address]",
		Short: "Run the host world and its console.",
		Long: `Starts the host daemon that owns the glove collection, the tick scheduler
and the console serving autofixhandedness, fixhandedness and glove-reaction.

Only the port from ServerAddress config is used for listening (e.g., :7451).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:7451).
The glove collection is persisted to the world file after every change.
The autofixhandedness job state is not persisted: it is stopped after a restart.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			return server.Run(ctx, &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				WorldFile:     worldFile,
			})
		},
	}
)

// Execute runs the handedness-host CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&worldFile, "world-file", "w", "", "path to the world file (overrides config)")
}
