package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/autofix-handedness/internal/config"
	"github.com/oshokin/autofix-handedness/internal/service/client"
	"github.com/oshokin/autofix-handedness/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the host address from the configuration.
	serverAddress string

	// rootCmd represents the base command for the periodic fix console.
	rootCmd = &cobra.Command{
		Use:   "autofixhandedness [start|stop|end|status]",
		Short: "Toggle the periodic glove handedness fix.",
		Long: `Controls the periodic job that fixes handedness of gloves created by a custom reaction.

  start        register the job (every 2400 host ticks) and print its status
  stop, end    unregister the job and print its status
  (anything)   print the status, or a hint if the job was never loaded

Running start while the job runs keeps the single existing registration.
Only the first argument is read; the rest are ignored.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return client.Run(ctx, &client.Options{
				ConfigPath:    cfgPath,
				ServerAddress: serverAddress,
				Args:          consoleArgs(args),
				Output:        cmd.OutOrStdout(),
			})
		},
	}
)

// Execute runs the autofixhandedness CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// A version subcommand would shadow `autofixhandedness version`, which is a status query.
	version.AttachCobraVersionFlag(rootCmd)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&serverAddress, "server", "s", "", "host console address (overrides config)")
}

// consoleArgs keeps the first argument, the only one the console reads.
func consoleArgs(args []string) []string {
	if len(args) > 1 {
		return args[:1]
	}

	return args
}
