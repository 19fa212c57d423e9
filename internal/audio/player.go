package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// FilePlaceholder is replaced by the resource path in a player command.
const FilePlaceholder = "{file}"

var (
	// ErrResourceMissing is returned when the sound file does not exist.
	ErrResourceMissing = errors.New("sound resource is missing")
	// ErrUnsupportedOS indicates there is no default player for the current OS.
	ErrUnsupportedOS = errors.New("unsupported operating system")
)

// Player plays one sound at a time.
type Player struct {
	// command is the player invocation, nil selects the OS default.
	command []string
	// mu guards current.
	mu sync.Mutex
	// current is the running player process.
	current *exec.Cmd
	// exited is closed when current terminates.
	exited chan struct{}
}

// Option configures a Player.
type Option func(*Player)

// WithCommand overrides the player command. Empty commands are ignored.
func WithCommand(command []string) Option {
	return func(p *Player) {
		if len(command) > 0 {
			p.command = command
		}
	}
}

// NewPlayer creates an idle player.
func NewPlayer(opts ...Option) *Player {
	p := new(Player)
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Play starts playing resource, stopping whatever was playing before.
// The sound keeps playing after ctx is done; use Stop to end it.
func (p *Player) Play(ctx context.Context, resource string) error {
	if _, err := os.Stat(resource); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrResourceMissing, resource)
		}

		return fmt.Errorf("stat sound resource: %w", err)
	}

	args, err := p.commandFor(resource)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	//nolint:gosec // The command comes from the operator's settings.
	cmd := exec.Command(args[0], args[1:]...)
	if err = cmd.Start(); err != nil {
		return fmt.Errorf("start player %s: %w", args[0], err)
	}

	exited := make(chan struct{})
	p.current, p.exited = cmd, exited

	go func() {
		waitErr := cmd.Wait()
		close(exited)

		p.mu.Lock()
		if p.current == cmd {
			p.current, p.exited = nil, nil
		}
		p.mu.Unlock()

		if waitErr != nil {
			logger.DebugKV(ctx, "Player exited", "error", waitErr)
		}
	}()

	logger.InfoKV(ctx, "Playing sound", "resource", resource, "player", args[0])

	return nil
}

// Stop ends the running sound and reports whether one was playing.
func (p *Player) Stop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stopLocked()
}

// IsPlaying reports whether a sound is running.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current != nil
}

// stopLocked kills the running process and waits for it. Callers hold mu.
func (p *Player) stopLocked() bool {
	if p.current == nil {
		return false
	}

	cmd, exited := p.current, p.exited
	p.current, p.exited = nil, nil

	_ = cmd.Process.Kill() //nolint:errcheck // The process may have exited on its own.
	<-exited

	return true
}

// commandFor expands the configured or default command for resource.
func (p *Player) commandFor(resource string) ([]string, error) {
	command := p.command
	if len(command) == 0 {
		var err error
		if command, err = defaultCommand(); err != nil {
			return nil, err
		}
	}

	args := make([]string, 0, len(command)+1)
	substituted := false

	for _, arg := range command {
		if strings.Contains(arg, FilePlaceholder) {
			arg = strings.ReplaceAll(arg, FilePlaceholder, resource)
			substituted = true
		}

		args = append(args, arg)
	}

	if !substituted {
		args = append(args, resource)
	}

	return args, nil
}

// defaultCommand picks a player shipped with, or common on, the current OS:
// - darwin:  afplay
// - linux:   ffplay from ffmpeg, without a window
// - windows: PowerShell media player, blocking until the track ends.
func defaultCommand() ([]string, error) {
	switch runtime.GOOS {
	case "darwin":
		return []string{"afplay", FilePlaceholder}, nil
	case "linux", "freebsd", "openbsd":
		return []string{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", FilePlaceholder}, nil
	case "windows":
		script := "$p = New-Object System.Windows.Media.MediaPlayer; $p.Open('" + FilePlaceholder + "'); " +
			"$p.Play(); Start-Sleep -Seconds 1; Start-Sleep -Seconds $p.NaturalDuration.TimeSpan.TotalSeconds"

		return []string{"powershell.exe", "-NoProfile", "-Command", "Add-Type -AssemblyName presentationCore; " + script}, nil
	default:
		return nil, fmt.Errorf("no default player for %s: %w", runtime.GOOS, ErrUnsupportedOS)
	}
}
