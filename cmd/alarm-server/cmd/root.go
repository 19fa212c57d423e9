package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/service/common"
	"github.com/oshokin/alarm-clock/internal/service/server"
	"github.com/oshokin/alarm-clock/internal/version"
)

// errAlreadyRunning is returned when another alarm-server uses the same executable.
var errAlreadyRunning = errors.New("another alarm-server is already running")

var (
	// configPath to the configuration YAML file.
	configPath string
	// storeFile path where pending alarms are persisted.
	storeFile string

	// rootCmd represents the base command for running the alarm server.
	rootCmd = &cobra.Command{
		Use:   "alarm-server [listen-address]",
		Short: "Run the alarm clock scheduling server.",
		Long: `Starts the alarm clock server: the scheduling core, the ringer and the gRPC API used by alarmctl.

The server listens on the specified address or uses settings from configuration file.
Only the port from server_addr config is used for listening (e.g., :8080).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).
Pending alarms and the notification permission are persisted to a JSON store file.
When an alarm fires the configured sound plays until it is dismissed with "alarmctl stop".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// A second server would overwrite the store behind the first one.
			others, err := common.OtherInstances()
			if err != nil {
				return fmt.Errorf("check running instances: %w", err)
			}

			if len(others) > 0 {
				return fmt.Errorf("%w (pid %d)", errAlreadyRunning, others[0])
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				StoreFile:     storeFile,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&storeFile, "store-file", "s", "", "path to the pending alarms store (overrides config)")
}
