package fixonce

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/autofix-handedness/internal/config"
	domain "github.com/oshokin/autofix-handedness/internal/domain/glove"
	repository "github.com/oshokin/autofix-handedness/internal/repository/world"
)

// writeSettings stores settings pointing at worldFile and returns their path.
func writeSettings(t *testing.T, worldFile string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(path, &config.Config{
		ServerAddress: "127.0.0.1:0",
		WorldFile:     worldFile,
	}))

	return path
}

// TestRun_FixesWorldFile fixes the world file offline and prints the report.
func TestRun_FixesWorldFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	worldFile := filepath.Join(t.TempDir(), "world.yaml")
	repo := repository.NewFileRepository(worldFile)

	require.NoError(t, repo.Save(ctx, []*domain.Glove{
		{ID: 1},
		{ID: 2, Handedness: [2]bool{true, false}},
		{ID: 3},
	}))

	out := new(bytes.Buffer)
	err := Run(ctx, &Options{
		ConfigPath: writeSettings(t, worldFile),
		Output:     out,
		Offline:    true,
	})
	require.NoError(t, err)
	require.Equal(t, "Fixed 2 unhanded glove(s).\n", out.String())

	gloves, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, [2]bool{true, false}, gloves[0].Handedness)
	require.Equal(t, [2]bool{true, false}, gloves[1].Handedness)
	require.Equal(t, [2]bool{false, true}, gloves[2].Handedness)

	// Second run has nothing to report.
	out.Reset()
	require.NoError(t, Run(ctx, &Options{ConfigPath: writeSettings(t, worldFile), Output: out, Offline: true}))
	require.Empty(t, out.String())
}

// TestRun_MissingWorldIsEmpty treats a missing world file as an empty world.
func TestRun_MissingWorldIsEmpty(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)
	settings := writeSettings(t, filepath.Join(t.TempDir(), "other.yaml"))
	worldFile := filepath.Join(t.TempDir(), "missing.yaml")

	err := Run(context.Background(), &Options{
		ConfigPath: settings,
		WorldFile:  worldFile,
		Output:     out,
		Offline:    true,
	})
	require.NoError(t, err)
	require.Empty(t, out.String())
}
