package scheduler

import (
	"context"
	"fmt"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/notification"
	"github.com/oshokin/alarm-clock/internal/pubsub"
)

// Snapshot is the in-memory copy of the notification store seen by the core.
// Receivers must treat the alarms as read-only.
type Snapshot struct {
	// Alarms are the pending definitions in the order the service returned them.
	Alarms []*domain.Definition
	// Authorization is the last permission read or requested.
	Authorization domain.AuthorizationState
	// RefreshedAt is when the snapshot was last replaced.
	RefreshedAt time.Time
}

// Core is the alarm scheduling core. Run must be running for the snapshot to
// be updated.
type Core struct {
	// center is the notification service.
	center notification.Center
	// tasks serializes every access to snapshot.
	tasks *queue
	// hub notifies subscribers of replaced snapshots.
	hub *pubsub.Hub[Snapshot]
	// snapshot is owned by the task queue goroutine.
	snapshot Snapshot
	// now returns the current instant.
	now func() time.Time
}

// Option configures a Core.
type Option func(*Core)

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Core) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCore creates a core backed by center.
func NewCore(center notification.Center, opts ...Option) *Core {
	c := &Core{
		center: center,
		tasks:  newQueue(defaultQueueSize),
		hub:    pubsub.NewHub[Snapshot](),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Subscribers always start from a snapshot, even before the first listing.
	c.hub.Publish(c.current())

	return c
}

// Run executes snapshot tasks until ctx is done.
func (c *Core) Run(ctx context.Context) error {
	logger.Debug(ctx, "Scheduling core started")
	c.tasks.run(ctx)
	logger.Debug(ctx, "Scheduling core stopped")

	return nil
}

// ListAlarms fetches every pending definition and makes the result the new
// snapshot. A failed listing leaves the snapshot unchanged.
func (c *Core) ListAlarms(ctx context.Context) ([]*domain.Definition, error) {
	defs, err := c.center.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending alarms: %w", err)
	}

	err = c.tasks.await(ctx, func() {
		c.snapshot.Alarms = domain.CloneAll(defs)
		c.publish()
	})
	if err != nil {
		return nil, fmt.Errorf("update snapshot: %w", err)
	}

	return defs, nil
}

// CreateAlarm submits one daily definition when every weekday is selected and
// one weekday-scoped definition per selected day otherwise. Submissions are
// independent: each result carries its own error and nothing is rolled back.
// An empty selection creates nothing. Callers refresh with ListAlarms.
func (c *Core) CreateAlarm(
	ctx context.Context,
	title string,
	hour, minute int,
	days domain.WeekdaySelection,
) []domain.Submission {
	included := days.Included()
	now := c.now()

	var triggers []domain.Trigger

	if len(included) == domain.DaysPerWeek {
		triggers = []domain.Trigger{domain.DailyTrigger(hour, minute)}
	} else {
		triggers = make([]domain.Trigger, 0, len(included))
		for _, day := range included {
			triggers = append(triggers, domain.WeeklyTrigger(day, hour, minute))
		}
	}

	results := make([]domain.Submission, 0, len(triggers))

	for _, trigger := range triggers {
		def := domain.NewDefinition(title, trigger, now)

		err := c.center.Add(ctx, def)
		if err != nil {
			logger.WarnKV(ctx, "Alarm not scheduled", "title", title, "trigger", trigger.String(), "error", err)
		}

		results = append(results, domain.Submission{Definition: def, Err: err})
	}

	if len(results) == 0 {
		logger.WarnKV(ctx, "No weekday selected, nothing scheduled", "title", title)
	}

	return results
}

// DeleteAlarms removes the definitions with the given identifiers. An empty
// set is a no-op and unknown identifiers are ignored. Callers refresh with
// ListAlarms.
func (c *Core) DeleteAlarms(ctx context.Context, identifiers []string) error {
	if len(identifiers) == 0 {
		return nil
	}

	if err := c.center.Remove(ctx, identifiers); err != nil {
		return fmt.Errorf("remove alarms: %w", err)
	}

	return nil
}

// Activate reads the permission, requests it while undetermined and reloads
// the alarms once authorized.
func (c *Core) Activate(ctx context.Context) (domain.AuthorizationState, error) {
	state, err := c.center.AuthorizationState(ctx)
	if err != nil {
		return state, fmt.Errorf("read authorization: %w", err)
	}

	if state == domain.AuthorizationUndetermined {
		return c.RequestAuthorization(ctx)
	}

	return c.applyAuthorization(ctx, state)
}

// RequestAuthorization asks for the permission and reloads the alarms once authorized.
func (c *Core) RequestAuthorization(ctx context.Context) (domain.AuthorizationState, error) {
	state, err := c.center.RequestAuthorization(ctx)
	if err != nil {
		return state, fmt.Errorf("request authorization: %w", err)
	}

	return c.applyAuthorization(ctx, state)
}

// Snapshot returns the current snapshot.
func (c *Core) Snapshot(ctx context.Context) (Snapshot, error) {
	var snapshot Snapshot

	err := c.tasks.await(ctx, func() {
		snapshot = c.current()
	})

	return snapshot, err
}

// Subscribe streams snapshots until ctx is done, starting with the latest one.
// A core that has not listed yet delivers the empty snapshot first.
func (c *Core) Subscribe(ctx context.Context) <-chan Snapshot {
	return c.hub.Subscribe(ctx)
}

// applyAuthorization records state in the snapshot and reloads when authorized.
func (c *Core) applyAuthorization(ctx context.Context, state domain.AuthorizationState) (domain.AuthorizationState, error) {
	err := c.tasks.await(ctx, func() {
		if c.snapshot.Authorization != state {
			c.snapshot.Authorization = state
			c.publish()
		}
	})
	if err != nil {
		return state, fmt.Errorf("update snapshot: %w", err)
	}

	logger.InfoKV(ctx, "Authorization state", "authorization", state)

	if state != domain.AuthorizationAuthorized {
		return state, nil
	}

	if _, err = c.ListAlarms(ctx); err != nil {
		return state, err
	}

	return state, nil
}

// publish stamps and publishes the snapshot. Runs on the task queue.
func (c *Core) publish() {
	c.snapshot.RefreshedAt = c.now()
	c.hub.Publish(c.current())
}

// current returns an independent copy of the snapshot. Runs on the task queue.
func (c *Core) current() Snapshot {
	return Snapshot{
		Alarms:        domain.CloneAll(c.snapshot.Alarms),
		Authorization: c.snapshot.Authorization,
		RefreshedAt:   c.snapshot.RefreshedAt,
	}
}
