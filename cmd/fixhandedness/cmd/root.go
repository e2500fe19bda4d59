package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/autofix-handedness/internal/config"
	"github.com/oshokin/autofix-handedness/internal/service/fixonce"
	"github.com/oshokin/autofix-handedness/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// worldFile overrides the world file from the configuration.
	worldFile string
	// offline skips the host daemon probe.
	offline bool

	// rootCmd represents the one-shot fix command.
	rootCmd = &cobra.Command{
		Use:   "fixhandedness",
		Short: "Fix handedness of gloves created by a custom reaction, once.",
		Long: `Assigns alternating handedness, right first, to every glove that has none.

Prints "Fixed N unhanded glove(s)." when gloves were fixed and nothing otherwise.
If handedness-host runs on this machine the pass is done by the host,
otherwise the world file is fixed in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return fixonce.Run(ctx, &fixonce.Options{
				ConfigPath: cfgPath,
				WorldFile:  worldFile,
				Output:     cmd.OutOrStdout(),
				Offline:    offline,
			})
		},
	}
)

// Execute runs the fixhandedness CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&worldFile, "world-file", "w", "", "path to the world file (overrides config)")
	rootCmd.Flags().BoolVar(&offline, "offline", false, "fix the world file without looking for a running host")
}
