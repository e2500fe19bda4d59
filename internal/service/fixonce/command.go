package fixonce

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/autofix-handedness/internal/config"
	"github.com/oshokin/autofix-handedness/internal/host"
	"github.com/oshokin/autofix-handedness/internal/logger"
	repository "github.com/oshokin/autofix-handedness/internal/repository/world"
	"github.com/oshokin/autofix-handedness/internal/service/autofix"
	"github.com/oshokin/autofix-handedness/internal/service/common"
)

// Options configures the one-shot fix.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// WorldFile overrides the world file from the configuration.
	WorldFile string
	// Output receives the report line.
	Output io.Writer
	// Offline fixes the world file directly without probing for the host daemon.
	Offline bool
}

// Run fixes unhanded gloves once and prints the report line when any were fixed.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "fixhandedness")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if !opts.Offline {
		running, probeErr := common.IsProcessRunning(common.HostExecutable())
		if probeErr != nil {
			logger.WarnKV(ctx, "Unable to probe for the host daemon, fixing the world file", "error", probeErr)
		}

		if running {
			return fixRemote(ctx, cfg, opts.Output)
		}
	}

	worldFile := cfg.WorldFile
	if opts.WorldFile != "" {
		worldFile = opts.WorldFile
	}

	return fixFile(ctx, worldFile, opts.Output)
}

// fixFile runs the pass over the world file.
func fixFile(ctx context.Context, worldFile string, out io.Writer) error {
	world, err := host.OpenWorld(ctx, repository.NewFileRepository(worldFile))
	if err != nil {
		return fmt.Errorf("open world: %w", err)
	}

	result, err := autofix.FixOnce(ctx, world, out)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "World file fixed", "world_file", worldFile, "fixed", result.FixedCount)

	return nil
}

// fixRemote asks the running host daemon to run the pass.
func fixRemote(ctx context.Context, cfg *config.Config, out io.Writer) error {
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	client, err := common.Dial(ctx, cfg.ServerAddress, common.WithCallTimeout(cfg.Timeout), common.WithActor(actor))
	if err != nil {
		return fmt.Errorf("dial host: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	fixed, err := client.FixOnce(ctx)
	if err != nil {
		return err
	}

	if fixed > 0 {
		_, _ = fmt.Fprintln(out, autofix.FixedLine(fixed))
	}

	return nil
}
