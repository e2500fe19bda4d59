package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConsoleArgs keeps only the first argument.
func TestConsoleArgs(t *testing.T) {
	t.Parallel()

	require.Empty(t, consoleArgs(nil))
	require.Equal(t, []string{"status"}, consoleArgs([]string{"status"}))
	require.Equal(t, []string{"stop"}, consoleArgs([]string{"stop", "now", "please"}))
}

// TestRootCmd_AcceptsAnyArguments leaves extra words and `version` to the console.
func TestRootCmd_AcceptsAnyArguments(t *testing.T) {
	t.Parallel()

	require.NoError(t, rootCmd.Args(rootCmd, []string{"status", "extra"}))

	found, rest, err := rootCmd.Find([]string{"version"})
	require.NoError(t, err)
	require.Same(t, rootCmd, found)
	require.Equal(t, []string{"version"}, rest)
}
