package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"google.golang.org/grpc"

	api "github.com/oshokin/autofix-handedness/internal/api/grpc/console"
	"github.com/oshokin/autofix-handedness/internal/config"
	"github.com/oshokin/autofix-handedness/internal/host"
	"github.com/oshokin/autofix-handedness/internal/logger"
	repository "github.com/oshokin/autofix-handedness/internal/repository/world"
)

// Options controls the handedness-host process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// WorldFile overrides the world file from the configuration.
	WorldFile string
	// Console receives the report lines of fixes. Defaults to stdout.
	Console io.Writer
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the host daemon and blocks until context is canceled or the
// gRPC server stops. The console session lives as long as this call.
//
//nolint:funlen // Linear wiring of the daemon reads best in one place.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "handedness-host")

	// Load configuration first to get server settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(level)
	}

	// Use WorldFile from config unless overridden by command line option.
	worldFile := settings.WorldFile
	if opts.WorldFile != "" {
		worldFile = opts.WorldFile
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	world, err := host.OpenWorld(ctx, repository.NewFileRepository(worldFile))
	if err != nil {
		return fmt.Errorf("open world: %w", err)
	}

	scheduler, err := host.NewScheduler(ctx, settings.TickDuration)
	if err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	defer func() {
		if shutdownErr := scheduler.Shutdown(); shutdownErr != nil {
			logger.ErrorKV(ctx, "Scheduler shutdown failed", "error", shutdownErr)
		}
	}()

	svc := newService(world, scheduler, consoleOutput(opts.Console))

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(api.ActorInterceptor))
	api.RegisterConsoleServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(
		ctx,
		"Host console listening",
		"listen_address", listenAddress,
		"world_file", worldFile,
		"gloves", len(world.Snapshot()),
		"tick_duration", settings.TickDuration.String(),
	)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// consoleOutput wraps sink into the console writer used for report lines.
func consoleOutput(sink io.Writer) io.Writer {
	if sink == nil {
		sink = os.Stdout
	}

	return logger.ConsoleWriter("handedness-host.console", sink)
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Bind on all interfaces.
	return ":" + port, nil
}
