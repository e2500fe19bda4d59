//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/mitchellh/go-ps"
)

// baseHostExecutable is the host daemon binary name without extension.
const baseHostExecutable = "handedness-host"

// HostExecutable returns the host daemon executable name for this platform.
func HostExecutable() string {
	return baseHostExecutable + getExecutableExtension()
}

// IsProcessRunning reports whether another process with the given executable
// name is running on this machine.
func IsProcessRunning(processName string) (bool, error) {
	processList, err := ps.Processes()
	if err != nil {
		return false, fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if strings.EqualFold(process.Executable(), processName) {
			return true, nil
		}
	}

	return false, nil
}

// getExecutableExtension returns ".exe" on Windows and "" elsewhere.
func getExecutableExtension() string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return ".exe"
	}

	return ""
}
