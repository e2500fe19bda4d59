package client

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/autofix-handedness/internal/config"
	"github.com/oshokin/autofix-handedness/internal/logger"
	"github.com/oshokin/autofix-handedness/internal/service/common"
)

// Options configures the console client.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// Args are the console arguments, e.g. ["start"].
	Args []string

	// Output receives the console output line.
	Output io.Writer
}

// Run sends the console command to the host daemon and prints its output.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "autofixhandedness")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for audit logging on the host.
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout), common.WithActor(actor))
	if err != nil {
		return fmt.Errorf("dial host: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Sending console command", "server_address", serverAddress, "args", opts.Args)

	output, err := client.Execute(ctx, opts.Args)
	if err != nil {
		// Rejected commands still print their console output before failing.
		if output != "" {
			_, _ = fmt.Fprintln(opts.Output, output)
		}

		return err
	}

	_, _ = fmt.Fprintln(opts.Output, output)

	return nil
}
