package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	api "github.com/oshokin/alarm-clock/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-clock/internal/audio"
	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/notification"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
	"github.com/oshokin/alarm-clock/internal/repository/pending"
	"github.com/oshokin/alarm-clock/internal/service/ringer"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

// Options controls the alarm-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// StoreFile overrides the path of the pending alarms store.
	StoreFile string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// shutdownTimeout bounds how long GracefulStop may wait for in-flight calls.
const shutdownTimeout = 5 * time.Second

// Run starts the scheduling core, the ringer and the gRPC server and blocks
// until ctx is canceled or one of them fails.
//
//nolint:funlen // Wiring of every component lives in one place.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-server")

	// Load configuration first to get server settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if lvl, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(lvl)
	}

	// Use StoreFile from config unless overridden by command line option.
	storeFile := settings.StoreFile
	if opts.StoreFile != "" {
		storeFile = opts.StoreFile
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	// Open the notification store; prompts are answered from settings.
	prompter := notification.StaticPrompter(settings.Authorization.GrantOnRequest)

	center, err := notification.NewLocalCenter(ctx, pending.NewFileRepository(storeFile), prompter)
	if err != nil {
		return fmt.Errorf("open notification store: %w", err)
	}

	core := scheduler.NewCore(center)

	// The ringer owns the audio handle for the lifetime of the process.
	sound := resolveResource(opts.ConfigPath, settings.Sound.File)
	bell := ringer.New(audio.NewPlayer(audio.WithCommand(settings.Sound.Player)), sound)

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	// Create and configure gRPC server with alarm service. Watch streams end with gctx.
	grpcServer := grpc.NewServer()
	pb.RegisterAlarmServiceServer(grpcServer, api.NewServer(core, bell, api.WithServerContext(gctx)))

	logger.InfoKV(
		ctx,
		"Alarm server listening",
		"listen_address", listenAddress,
		"store_file", storeFile,
		"sound", sound,
	)

	g.Go(func() error {
		return core.Run(gctx)
	})

	g.Go(func() error {
		return bell.Run(gctx, core)
	})

	// Read the permission once and load the pending alarms.
	g.Go(func() error {
		state, err := core.Activate(gctx)
		if err != nil && gctx.Err() == nil {
			logger.ErrorKV(gctx, "Activation failed", "error", err)
		}

		if state == domain.AuthorizationDenied {
			logger.Warn(gctx, "Notifications are denied, alarms will not be scheduled")
		}

		return nil
	})

	g.Go(func() error {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}

		return nil
	})

	// GracefulStop lets Serve return once in-flight calls have finished;
	// calls still running after shutdownTimeout are cut off.
	g.Go(func() error {
		<-gctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")

		stopped := make(chan struct{})

		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-time.After(shutdownTimeout):
			logger.Warn(ctx, "Graceful shutdown timed out, closing connections")
			grpcServer.Stop()
		}

		return nil
	})

	err = g.Wait()

	logger.Info(ctx, "Alarm server stopped")

	return err
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// Extract port from config address (e.g., "server.example.com:8080" -> ":8080").
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}

// resolveResource makes a relative resource path relative to the settings file.
func resolveResource(configPath, resource string) string {
	if resource == "" || filepath.IsAbs(resource) {
		return resource
	}

	if configPath == "" {
		configPath = config.DefaultConfigFilename
	}

	return filepath.Join(filepath.Dir(configPath), resource)
}
