package server

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResolveListenAddress prefers the override and otherwise binds the configured port.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("alarm.local:8080", ":9090")
	require.NoError(t, err)
	require.Equal(t, ":9090", addr)

	addr, err = resolveListenAddress("alarm.local:8080", "")
	require.NoError(t, err)
	require.Equal(t, ":8080", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("alarm.local", "")
	require.Error(t, err)
}

// TestResolveResource resolves relative sounds next to the settings file.
func TestResolveResource(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "bell.mp3")

	require.Equal(t, abs, resolveResource("/etc/alarm/alarm-clock.yaml", abs))
	require.Equal(t, filepath.Join("/etc/alarm", "music.mp3"), resolveResource("/etc/alarm/alarm-clock.yaml", "music.mp3"))
	require.Equal(t, "music.mp3", resolveResource("", "music.mp3"))
	require.Empty(t, resolveResource("/etc/alarm/alarm-clock.yaml", ""))
}
