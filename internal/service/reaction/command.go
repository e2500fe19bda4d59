package reaction

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oshokin/autofix-handedness/internal/config"
	"github.com/oshokin/autofix-handedness/internal/logger"
	"github.com/oshokin/autofix-handedness/internal/service/common"
)

// DefaultCount is one pair of gloves.
const DefaultCount = 2

// errInvalidCount is returned for non-positive glove counts.
var errInvalidCount = errors.New("count must be positive")

// Options configures the reaction command.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Count is the number of gloves to produce.
	Count int
	// Output receives the result line.
	Output io.Writer
}

// Run asks the host daemon to craft unhanded gloves.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "glove-reaction")

	if opts.Count <= 0 {
		return fmt.Errorf("craft %d gloves: %w", opts.Count, errInvalidCount)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

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

	total, err := client.CraftGloves(ctx, opts.Count)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Gloves crafted", "count", opts.Count, "total", total)

	_, _ = fmt.Fprintf(opts.Output, "Crafted %d unhanded glove(s), %d in the world.\n", opts.Count, total)

	return nil
}
