package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// Config holds the settings of the alarm clock binaries.
type Config struct {
	// ServerAddress is the gRPC address alarm-server listens on and alarmctl dials.
	ServerAddress string `yaml:"server_addr"`
	// StoreFile is the JSON file holding pending alarms and the authorization state.
	StoreFile string `yaml:"store_file"`
	// Timeout bounds every RPC issued by alarmctl.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is the minimum level of log entries (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// Sound configures the audio played when an alarm fires.
	Sound Sound `yaml:"sound"`
	// Authorization configures how permission requests are answered.
	Authorization Authorization `yaml:"authorization"`
}

// Sound configures the ringing sound.
type Sound struct {
	// File is the path of the sound resource.
	File string `yaml:"file"`
	// Player overrides the OS default player command. The {file} placeholder is
	// replaced by the resource path; without it the path is appended.
	Player []string `yaml:"player,omitempty"`
}

// Authorization configures the answer given to permission prompts.
type Authorization struct {
	// GrantOnRequest grants notifications when authorization is requested.
	GrantOnRequest bool `yaml:"grant_on_request"`
}

const (
	// DefaultConfigFilename is the default settings filename.
	DefaultConfigFilename = "alarm-clock.yaml"

	// DefaultStoreFilename is the default pending alarms filename.
	DefaultStoreFilename = "alarm-clock-store.json"

	// DefaultSoundFilename is the default ringing sound.
	DefaultSoundFilename = "music.mp3"

	// DefaultTimeout is the default duration of alarmctl calls.
	DefaultTimeout = 5 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the permission of files written by the binaries.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerAddressRequired is returned when the server address is missing.
	errServerAddressRequired = errors.New("server address must be provided")
	// errUnknownLogLevel is returned for log levels zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Load reads settings from path and validates them.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save validates cfg and writes it to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks required fields and fills defaults in place.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ServerAddress == "" {
		return errServerAddressRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server address: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.StoreFile == "" {
		cfg.StoreFile = DefaultStoreFilename
	}

	if cfg.Sound.File == "" {
		cfg.Sound.File = DefaultSoundFilename
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	return nil
}
