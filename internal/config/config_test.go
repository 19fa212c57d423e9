package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields, address format and log level names.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))
	require.ErrorIs(t, Validate(new(Config)), errServerAddressRequired)

	err := Validate(&Config{ServerAddress: "bad:address"})
	require.Error(t, err)

	err = Validate(&Config{ServerAddress: "127.0.0.1:0", LogLevel: "chatty"})
	require.ErrorIs(t, err, errUnknownLogLevel)
}

// TestValidate_Defaults ensures optional fields are filled in.
func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{ServerAddress: "127.0.0.1:50071"}
	require.NoError(t, Validate(cfg))

	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Equal(t, DefaultStoreFilename, cfg.StoreFile)
	require.Equal(t, DefaultSoundFilename, cfg.Sound.File)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.False(t, cfg.Authorization.GrantOnRequest)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := &Config{
		ServerAddress: "127.0.0.1:50071",
		StoreFile:     "/var/lib/alarm-clock/store.json",
		LogLevel:      "debug",
		Sound: Sound{
			File:   "/usr/share/sounds/bell.mp3",
			Player: []string{"mpv", "--no-video", "{file}"},
		},
		Authorization: Authorization{GrantOnRequest: true},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestLoad_MissingFile reports a read error for absent settings.
func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
