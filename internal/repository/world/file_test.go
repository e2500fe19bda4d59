package world

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/autofix-handedness/internal/domain/glove"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	gloves, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, gloves)
}

// TestFileRepository_SaveLoad_KeepsOrder ensures Save followed by Load returns the same gloves in order.
func TestFileRepository_SaveLoad_KeepsOrder(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "world.yaml")
	repo := NewFileRepository(file)

	ts := time.Now().UTC().Truncate(time.Second)
	want := []*domain.Glove{
		{ID: 3, Handedness: [2]bool{true, false}, CreatedAt: ts},
		{ID: 1, Handedness: [2]bool{false, false}, CreatedAt: ts},
		nil,
		{ID: 2, Handedness: [2]bool{false, true}},
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, w := range []*domain.Glove{want[0], want[1], want[3]} {
		require.Equal(t, w.ID, got[i].ID)
		require.Equal(t, w.Handedness, got[i].Handedness)
		require.True(t, w.CreatedAt.Equal(got[i].CreatedAt))
	}

	_, err = os.Stat(file)
	require.NoError(t, err)
}

// TestFileRepository_LoadHandWritten checks the documented world file layout decodes.
func TestFileRepository_LoadHandWritten(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "world.yaml")

	contents := "gloves:\n  - id: 10\n    handedness: [false, false]\n  - id: 11\n    handedness: [true, false]\n"
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o600))

	got, err := NewFileRepository(file).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].IsUnhanded())
	require.Equal(t, [2]bool{true, false}, got[1].Handedness)
}

// TestFileRepository_BadYAML ensures decode failures are surfaced.
func TestFileRepository_BadYAML(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(file, []byte("gloves: {"), 0o600))

	_, err := NewFileRepository(file).Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
