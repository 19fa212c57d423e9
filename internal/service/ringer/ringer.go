package ringer

import (
	"context"
	"sync"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/pubsub"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

// Audio plays and stops the alarm sound.
type Audio interface {
	Play(ctx context.Context, resource string) error
	Stop() bool
}

// Source streams the scheduling core's snapshots.
type Source interface {
	Subscribe(ctx context.Context) <-chan scheduler.Snapshot
}

// Ringer arms a one-shot timer per pending alarm and rings when it fires.
type Ringer struct {
	// audio is the explicit sound handle.
	audio Audio
	// sound is the resource played on every ring.
	sound string
	// now returns the current instant.
	now func() time.Time
	// events notifies subscribers of rings and dismissals.
	events *pubsub.Hub[Event]

	// mu guards the fields below.
	mu sync.Mutex
	// timers are keyed by alarm identifier.
	timers map[string]*time.Timer
	// generation is bumped on every re-arm so stale timers do nothing.
	generation uint64
	// ringing is the alarm that fired last and was not dismissed yet.
	ringing *domain.Definition
}

// Option configures a Ringer.
type Option func(*Ringer)

// WithClock overrides the time source used to compute delays.
func WithClock(now func() time.Time) Option {
	return func(r *Ringer) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates a ringer that plays sound through audio.
func New(audio Audio, sound string, opts ...Option) *Ringer {
	r := &Ringer{
		audio:  audio,
		sound:  sound,
		now:    time.Now,
		events: pubsub.NewFeed[Event](),
		timers: make(map[string]*time.Timer),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run follows snapshots from source and keeps the timers in line with them
// until ctx is done. Any sound still playing is stopped on return.
func (r *Ringer) Run(ctx context.Context, source Source) error {
	ctx = logger.WithName(ctx, "ringer")

	snapshots := source.Subscribe(ctx)

	defer func() {
		r.disarm()
		r.audio.Stop()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-snapshots:
			if !ok {
				// Dropped as a slow subscriber, catch up with a fresh subscription.
				snapshots = source.Subscribe(ctx)

				continue
			}

			r.arm(ctx, snapshot.Alarms)
		}
	}
}

// Stop silences the current ring. It reports whether anything was ringing or playing.
func (r *Ringer) Stop(ctx context.Context) bool {
	playing := r.audio.Stop()

	r.mu.Lock()
	alarm := r.ringing
	r.ringing = nil
	r.mu.Unlock()

	if alarm == nil && !playing {
		return false
	}

	logger.InfoKV(ctx, "Alarm dismissed", "alarm", identifierOf(alarm))
	r.events.Publish(Event{Kind: EventDismissed, Alarm: alarm, At: r.now()})

	return true
}

// Ringing returns the alarm that is ringing, or nil.
func (r *Ringer) Ringing() *domain.Definition {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.ringing.Clone()
}

// Armed returns the number of alarms with a pending timer.
func (r *Ringer) Armed() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.timers)
}

// Subscribe streams ring events published after the call until ctx is done.
func (r *Ringer) Subscribe(ctx context.Context) <-chan Event {
	return r.events.Subscribe(ctx)
}

// arm replaces every timer with one per alarm.
func (r *Ringer) arm(ctx context.Context, alarms []*domain.Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopTimers()

	now := r.now()
	for _, alarm := range alarms {
		r.schedule(ctx, alarm, now)
	}

	logger.DebugKV(ctx, "Alarms armed", "count", len(r.timers))
}

// disarm stops every timer.
func (r *Ringer) disarm() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopTimers()
}

// stopTimers must be called with mu held.
func (r *Ringer) stopTimers() {
	for id, timer := range r.timers {
		timer.Stop()
		delete(r.timers, id)
	}

	r.generation++
}

// schedule arms the next occurrence of alarm after from. Must be called with mu held.
func (r *Ringer) schedule(ctx context.Context, alarm *domain.Definition, from time.Time) {
	delay, err := scheduler.NextFireDelay(alarm, from)
	if err != nil {
		logger.WarnKV(ctx, "Alarm not armed", "alarm", alarm.Identifier, "error", err)

		return
	}

	at := from.Add(delay)
	generation := r.generation

	r.timers[alarm.Identifier] = time.AfterFunc(at.Sub(r.now()), func() {
		r.fire(ctx, alarm, at, generation)
	})
}

// fire rings alarm and re-arms it for its next occurrence.
func (r *Ringer) fire(ctx context.Context, alarm *domain.Definition, at time.Time, generation uint64) {
	r.mu.Lock()

	if generation != r.generation || ctx.Err() != nil {
		r.mu.Unlock()

		return
	}

	r.ringing = alarm

	// The timer may fire a little before at by the wall clock.
	r.schedule(ctx, alarm, latest(r.now(), at))
	r.mu.Unlock()

	logger.InfoKV(ctx, "Alarm ringing", "alarm", alarm.Identifier, "title", alarm.Title)

	if err := r.audio.Play(ctx, r.sound); err != nil {
		logger.ErrorKV(ctx, "Failed to play alarm sound", "sound", r.sound, "error", err)
	}

	r.events.Publish(Event{Kind: EventRinging, Alarm: alarm.Clone(), At: at})
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

func identifierOf(def *domain.Definition) string {
	if def == nil {
		return ""
	}

	return def.Identifier
}
