package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/export/calendar"
	"github.com/oshokin/alarm-clock/internal/logger"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// Options configures how alarmctl reaches the server.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Out receives the printed results, os.Stdout when nil.
	Out io.Writer
}

// CreateOptions describes the alarm to create.
type CreateOptions struct {
	// Title is the alarm display name.
	Title string
	// Time is the time of day as HH:MM.
	Time string
	// Days lists weekdays by name or number. Empty, "daily" or "all" select every day.
	Days []string
}

// timeOfDayLayout is the accepted time of day format.
const timeOfDayLayout = "15:04"

var (
	// ErrNothingCreated is returned when no weekday is selected.
	ErrNothingCreated = errors.New("no weekday selected, nothing was created")
	// ErrNothingScheduled is returned when the server refused every record.
	ErrNothingScheduled = errors.New("no alarm was scheduled")
	// errNoIdentifiers is returned by Delete without identifiers.
	errNoIdentifiers = errors.New("at least one alarm identifier is required")
)

//nolint:gochecknoglobals // Shared terminal styles.
var (
	headerStyle  = color.New(color.Bold)
	successStyle = color.New(color.FgGreen)
	warningStyle = color.New(color.FgYellow)
	failureStyle = color.New(color.FgRed)
	ringStyle    = color.New(color.FgRed, color.Bold)
)

// session is a connected alarmctl invocation.
type session struct {
	client *common.Client
	out    io.Writer
}

// connect loads settings and dials the server.
func connect(ctx context.Context, opts *Options) (*session, error) {
	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if lvl, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(lvl)
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for audit logging.
	requester, err := common.DetectRequester()
	if err != nil {
		logger.WarnKV(ctx, "Unable to detect requester", "error", err)
	}

	client, err := common.Dial(
		ctx,
		serverAddress,
		common.WithCallTimeout(cfg.Timeout),
		common.WithRequester(requester),
	)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Connected to alarm server", "server_address", serverAddress)

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &session{client: client, out: out}, nil
}

func (s *session) close() {
	_ = s.client.Close()
}

// run connects, calls fn and closes the connection.
func run(ctx context.Context, name string, opts *Options, fn func(ctx context.Context, s *session) error) error {
	ctx = logger.WithName(ctx, "alarmctl-"+name)

	s, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer s.close()

	return fn(ctx, s)
}

// List prints every pending alarm.
func List(ctx context.Context, opts *Options) error {
	return run(ctx, "list", opts, func(ctx context.Context, s *session) error {
		resp, err := s.client.ListAlarms(ctx)
		if err != nil {
			return err
		}

		s.printAuthorization(resp.GetAuthorization())
		s.printAlarms(resp.GetAlarms())

		return nil
	})
}

// Create creates an alarm and prints the records that were scheduled.
func Create(ctx context.Context, opts *Options, create *CreateOptions) error {
	params, err := ParseCreate(create)
	if err != nil {
		return err
	}

	return run(ctx, "create", opts, func(ctx context.Context, s *session) error {
		resp, err := s.client.CreateAlarm(ctx, params)
		if err != nil {
			return err
		}

		for _, alarm := range resp.GetCreated() {
			_, _ = successStyle.Fprintf(s.out, "Created %s\n", formatAlarm(alarm))
		}

		for _, failure := range resp.GetFailures() {
			_, _ = failureStyle.Fprintf(
				s.out,
				"Failed %s: %s\n",
				domain.Weekday(failure.GetWeekday()).Label(),
				failure.GetMessage(),
			)
		}

		if len(resp.GetCreated()) == 0 && len(resp.GetFailures()) == 0 {
			_, _ = warningStyle.Fprintln(s.out, ErrNothingCreated.Error())

			return ErrNothingCreated
		}

		if len(resp.GetCreated()) == 0 {
			return ErrNothingScheduled
		}

		return nil
	})
}

// Delete removes alarms by identifier and prints the remaining ones.
func Delete(ctx context.Context, opts *Options, identifiers []string) error {
	if len(identifiers) == 0 {
		return errNoIdentifiers
	}

	return run(ctx, "delete", opts, func(ctx context.Context, s *session) error {
		resp, err := s.client.DeleteAlarms(ctx, identifiers)
		if err != nil {
			return err
		}

		_, _ = successStyle.Fprintf(s.out, "Deleted %d identifier(s)\n", len(identifiers))
		s.printAlarms(resp.GetAlarms())

		return nil
	})
}

// Stop dismisses the ringing alarm.
func Stop(ctx context.Context, opts *Options) error {
	return run(ctx, "stop", opts, func(ctx context.Context, s *session) error {
		stopped, err := s.client.StopSound(ctx)
		if err != nil {
			return err
		}

		if stopped {
			_, _ = successStyle.Fprintln(s.out, "Alarm dismissed")
		} else {
			_, _ = warningStyle.Fprintln(s.out, "Nothing is ringing")
		}

		return nil
	})
}

// Activate re-reads the authorization on the server and prints it.
func Activate(ctx context.Context, opts *Options) error {
	return run(ctx, "activate", opts, func(ctx context.Context, s *session) error {
		state, err := s.client.Activate(ctx)
		if err != nil {
			return err
		}

		s.printAuthorization(state)

		return nil
	})
}

// Authorize asks the server for permission to deliver alarms.
func Authorize(ctx context.Context, opts *Options) error {
	return run(ctx, "authorize", opts, func(ctx context.Context, s *session) error {
		state, err := s.client.RequestAuthorization(ctx)
		if err != nil {
			return err
		}

		s.printAuthorization(state)

		return nil
	})
}

// Watch prints snapshots and ring events until ctx is done.
func Watch(ctx context.Context, opts *Options) error {
	return run(ctx, "watch", opts, func(ctx context.Context, s *session) error {
		return s.client.Watch(ctx, func(resp *pb.WatchAlarmsResponse) error {
			switch {
			case resp.GetRing() != nil:
				s.printRing(resp.GetRing())
			case resp.GetSnapshot() != nil:
				_, _ = headerStyle.Fprintf(s.out, "Snapshot at %s\n", time.Now().Format(time.TimeOnly))
				s.printAuthorization(resp.GetSnapshot().GetAuthorization())
				s.printAlarms(resp.GetSnapshot().GetAlarms())
			}

			return nil
		})
	})
}

// Export writes the pending alarms as iCalendar to path, or to the output when path is "-" or empty.
func Export(ctx context.Context, opts *Options, path string) error {
	return run(ctx, "export", opts, func(ctx context.Context, s *session) error {
		resp, err := s.client.ListAlarms(ctx)
		if err != nil {
			return err
		}

		defs := make([]*domain.Definition, 0, len(resp.GetAlarms()))
		for _, alarm := range resp.GetAlarms() {
			defs = append(defs, toDefinition(alarm))
		}

		if path == "" || path == "-" {
			return calendar.Export(s.out, defs, time.Now())
		}

		f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.DefaultFilePermissions)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}

		if err := calendar.Export(f, defs, time.Now()); err != nil {
			_ = f.Close()

			return err
		}

		if err := f.Close(); err != nil {
			return fmt.Errorf("close export file: %w", err)
		}

		_, _ = successStyle.Fprintf(s.out, "Exported %d alarm(s) to %s\n", len(defs), path)

		return nil
	})
}

// ParseCreate validates the time of day and weekday names.
func ParseCreate(create *CreateOptions) (*common.CreateParams, error) {
	at, err := time.Parse(timeOfDayLayout, strings.TrimSpace(create.Time))
	if err != nil {
		return nil, fmt.Errorf("parse time of day %q: %w", create.Time, err)
	}

	days, err := parseDays(create.Days)
	if err != nil {
		return nil, err
	}

	weekdays := make([]int, 0, domain.DaysPerWeek)
	for _, day := range days.Included() {
		weekdays = append(weekdays, int(day))
	}

	return &common.CreateParams{
		Title:    create.Title,
		Hour:     at.Hour(),
		Minute:   at.Minute(),
		Weekdays: weekdays,
	}, nil
}

func parseDays(names []string) (domain.WeekdaySelection, error) {
	if len(names) == 0 {
		return domain.AllWeekdays(), nil
	}

	var days domain.WeekdaySelection

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "daily", "all":
			return domain.AllWeekdays(), nil
		}

		day, err := domain.ParseWeekday(name)
		if err != nil {
			return days, err
		}

		days.Set(day, true)
	}

	return days, nil
}

func (s *session) printAuthorization(state string) {
	style := successStyle
	if state != domain.AuthorizationAuthorized.String() {
		style = warningStyle
	}

	_, _ = style.Fprintf(s.out, "Notifications: %s\n", state)
}

func (s *session) printAlarms(alarms []*pb.Alarm) {
	if len(alarms) == 0 {
		_, _ = fmt.Fprintln(s.out, "No alarms")

		return
	}

	for _, alarm := range alarms {
		_, _ = fmt.Fprintf(s.out, "%s  %s\n", alarm.GetIdentifier(), formatAlarm(alarm))
	}
}

func (s *session) printRing(ring *pb.RingEvent) {
	title := "<unknown>"
	if ring.GetAlarm() != nil {
		title = ring.GetAlarm().GetTitle()
	}

	at := ring.GetAt().AsTime().Local().Format(time.TimeOnly)

	switch ring.GetKind() {
	case "ringing":
		_, _ = ringStyle.Fprintf(s.out, "%s RINGING %s, run \"alarmctl stop\" to dismiss\n", at, title)
	default:
		_, _ = fmt.Fprintf(s.out, "%s %s %s\n", at, ring.GetKind(), title)
	}
}

// formatAlarm renders "07:30 Будильник (Понедельник), in 3h2m0s".
func formatAlarm(alarm *pb.Alarm) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%02d:%02d %s", alarm.GetHour(), alarm.GetMinute(), alarm.GetTitle())

	if label := alarm.GetWeekdayLabel(); label != "" {
		fmt.Fprintf(&b, " (%s)", label)
	} else {
		b.WriteString(" (daily)")
	}

	if seconds := alarm.GetFireInSeconds(); seconds > 0 {
		fmt.Fprintf(&b, ", in %s", time.Duration(seconds)*time.Second)
	}

	return b.String()
}

func toDefinition(alarm *pb.Alarm) *domain.Definition {
	hour, minute := int(alarm.GetHour()), int(alarm.GetMinute())

	trigger := domain.DailyTrigger(hour, minute)
	if weekday := domain.Weekday(alarm.GetWeekday()); weekday.Valid() {
		trigger = domain.WeeklyTrigger(weekday, hour, minute)
	}

	var createdAt time.Time
	if ts := alarm.GetCreatedAt(); ts != nil {
		createdAt = ts.AsTime()
	}

	return &domain.Definition{
		Identifier: alarm.GetIdentifier(),
		Title:      alarm.GetTitle(),
		Body:       alarm.GetBody(),
		Trigger:    trigger,
		CreatedAt:  createdAt,
	}
}
