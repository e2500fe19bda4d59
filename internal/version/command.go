package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AttachCobraVersionCommand attaches a `version` subcommand to the provided root command.
func AttachCobraVersionCommand(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long:  "Print the product version together with the commit hash and build timestamp injected at build time.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Full())
		},
	})
}

// AttachCobraVersionFlag exposes the version through a `--version` flag for
// commands whose positional arguments must stay free.
func AttachCobraVersionFlag(root *cobra.Command) {
	root.Version = Full()
	root.SetVersionTemplate("{{.Version}}\n")
}
