package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/autofix-handedness/internal/config"
	"github.com/oshokin/autofix-handedness/internal/service/reaction"
	"github.com/oshokin/autofix-handedness/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the host address from the configuration.
	serverAddress string

	// rootCmd represents the glove crafting command.
	rootCmd = &cobra.Command{
		Use:   "glove-reaction [count]",
		Short: "Craft unhanded gloves in the host world.",
		Long: `Simulates the custom reaction that produces gloves without handedness.

Asks the running handedness-host to append count new unhanded gloves
(a pair by default) to the world.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			count := reaction.DefaultCount
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parse count %q: %w", args[0], err)
				}

				count = parsed
			}

			return reaction.Run(ctx, &reaction.Options{
				ConfigPath:    cfgPath,
				ServerAddress: serverAddress,
				Count:         count,
				Output:        cmd.OutOrStdout(),
			})
		},
	}
)

// Execute runs the glove-reaction CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&serverAddress, "server", "s", "", "host console address (overrides config)")
}
