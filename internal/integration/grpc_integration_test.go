package integration

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/autofix-handedness/internal/config"
	domain "github.com/oshokin/autofix-handedness/internal/domain/glove"
	repository "github.com/oshokin/autofix-handedness/internal/repository/world"
	"github.com/oshokin/autofix-handedness/internal/service/client"
	"github.com/oshokin/autofix-handedness/internal/service/common"
	"github.com/oshokin/autofix-handedness/internal/service/server"
)

// freeAddress reserves a free local port and returns its address.
func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}

// startHost starts the host daemon with a temporary config and world file.
// Ticks last 10µs so the 2400-tick period is 24ms.
// Returns the settings path and a stop function.
func startHost(t *testing.T, addr, worldPath string) (string, func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			ServerAddress: addr,
			WorldFile:     worldPath,
			Timeout:       5 * time.Second,
			TickDuration:  10 * time.Microsecond,
		}),
	)

	go func() {
		options := &server.Options{
			ConfigPath:    cfgPath,
			ListenAddress: addr,
		}

		_ = server.Run(ctx, options) //nolint:errcheck // Failures surface as dial errors in the test.
	}()

	// Wait briefly for server to start listening.
	time.Sleep(150 * time.Millisecond)

	return cfgPath, func() {
		cancel()
		time.Sleep(100 * time.Millisecond)
	}
}

// TestConsole_EndToEnd crafts gloves, starts the periodic fix, observes the world file and stops it.
func TestConsole_EndToEnd(t *testing.T) {
	t.Parallel()

	addr := freeAddress(t)
	worldPath := filepath.Join(t.TempDir(), "world.yaml")

	cfgPath, stop := startHost(t, addr, worldPath)
	defer stop()

	ctx := context.Background()

	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	out, err := c.Execute(ctx, []string{"status"})
	require.NoError(t, err)
	require.Equal(t, "Autofix Handedness not loaded.  To start it, use: autofixhandedness start", out)

	out, err = c.Execute(ctx, []string{"stop"})
	require.Error(t, err)
	require.Equal(t, "Autofix Handedness not loaded.  To start it, use: autofixhandedness start", out)

	// The console client prints the hint and still fails.
	printed := new(bytes.Buffer)
	err = client.Run(ctx, &client.Options{
		ConfigPath: cfgPath,
		Args:       []string{"stop"},
		Output:     printed,
	})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
	require.Equal(t, "Autofix Handedness not loaded.  To start it, use: autofixhandedness start\n", printed.String())

	total, err := c.CraftGloves(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, 4, total)

	// The console client prints the status line.
	printed.Reset()
	require.NoError(t, client.Run(ctx, &client.Options{
		ConfigPath: cfgPath,
		Args:       []string{"start"},
		Output:     printed,
	}))
	require.Equal(t, "autofixhandedness: Running\n", printed.String())

	repo := repository.NewFileRepository(worldPath)

	require.Eventually(t, func() bool {
		gloves, loadErr := repo.Load(ctx)
		if loadErr != nil || len(gloves) != 4 {
			return false
		}

		for _, g := range gloves {
			if g.IsUnhanded() {
				return false
			}
		}

		return true
	}, 5*time.Second, 10*time.Millisecond)

	gloves, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, [2]bool{true, false}, gloves[0].Handedness)
	require.Equal(t, [2]bool{false, true}, gloves[1].Handedness)
	require.Equal(t, [2]bool{true, false}, gloves[2].Handedness)
	require.Equal(t, [2]bool{false, true}, gloves[3].Handedness)

	out, err = c.Execute(ctx, []string{"end"})
	require.NoError(t, err)
	require.Equal(t, "autofixhandedness: Stopped", out)

	// After stopping, new gloves stay unhanded until a one-shot fix.
	_, err = c.CraftGloves(ctx, 1)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	gloves, err = repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, gloves[4].IsUnhanded())

	fixed, err := c.FixOnce(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, fixed)

	gloves, err = repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, [2]bool{true, false}, gloves[4].Handedness)
}

// TestConsole_LoadsExistingWorld ensures the host continues an existing world file and starts with the job unloaded.
func TestConsole_LoadsExistingWorld(t *testing.T) {
	t.Parallel()

	worldPath := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, repository.NewFileRepository(worldPath).Save(context.Background(), []*domain.Glove{
		{ID: 41, Handedness: [2]bool{false, true}},
		{ID: 42},
	}))

	addr := freeAddress(t)

	_, stop := startHost(t, addr, worldPath)
	defer stop()

	ctx := context.Background()

	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	total, err := c.CraftGloves(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 3, total)

	out, err := c.Execute(ctx, nil)
	require.NoError(t, err)
	require.Contains(t, out, "not loaded")

	gloves, err := repository.NewFileRepository(worldPath).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(43), gloves[2].ID)
}
