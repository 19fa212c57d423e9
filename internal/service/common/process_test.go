//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSameExecutable covers exact, case-insensitive and truncated names.
func TestSameExecutable(t *testing.T) {
	t.Parallel()

	require.True(t, sameExecutable("alarm-server", "alarm-server"))
	require.True(t, sameExecutable("Alarm-Server.exe", "alarm-server.exe"))
	require.True(t, sameExecutable("alarm-server.te", "alarm-server.test"))
	require.False(t, sameExecutable("alarm", "alarm-server"))
	require.False(t, sameExecutable("alarmctl", "alarm-server"))
}

// TestOtherInstances_SkipsSelf never reports the current process.
func TestOtherInstances_SkipsSelf(t *testing.T) {
	t.Parallel()

	self, err := os.Executable()
	require.NoError(t, err)

	pids, err := OtherInstances()
	require.NoError(t, err)
	require.NotContains(t, pids, os.Getpid())
	require.NotEmpty(t, self)
}
