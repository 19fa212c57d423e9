package ringer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

var errTestPlay = errors.New("test play error")

// fakeAudio records play and stop calls.
type fakeAudio struct {
	mu sync.Mutex
	// plays counts Play calls.
	plays int
	// playing is true between Play and Stop.
	playing bool
	// playErr is returned by Play.
	playErr error
}

func (f *fakeAudio) Play(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.plays++

	if f.playErr != nil {
		return f.playErr
	}

	f.playing = true

	return nil
}

func (f *fakeAudio) Stop() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	wasPlaying := f.playing
	f.playing = false

	return wasPlaying
}

func (f *fakeAudio) playCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.plays
}

// fakeSource hands snapshots sent on ch to the ringer.
type fakeSource struct {
	ch chan scheduler.Snapshot
}

func (f *fakeSource) Subscribe(context.Context) <-chan scheduler.Snapshot {
	return f.ch
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// startRinger runs a ringer inside the current bubble and returns its snapshot feed.
func startRinger(ctx context.Context, audio Audio) (*Ringer, chan<- scheduler.Snapshot, <-chan struct{}) {
	r := New(audio, "music.mp3", WithClock(utcNow))
	source := &fakeSource{ch: make(chan scheduler.Snapshot)}
	done := make(chan struct{})

	go func() {
		defer close(done)

		_ = r.Run(ctx, source) //nolint:errcheck // Run only returns nil.
	}()

	return r, source.ch, done
}

// inMinutes returns a daily alarm firing the given number of minutes after midnight.
func inMinutes(title string, minutes int) *domain.Definition {
	return domain.NewDefinition(title, domain.DailyTrigger(minutes/60, minutes%60), utcNow())
}

// TestRinger_RingsAndRearms plays the sound once the timer fires, then arms the next day.
func TestRinger_RingsAndRearms(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		audio := new(fakeAudio)
		r, snapshots, _ := startRinger(ctx, audio)
		events := r.Subscribe(ctx)

		alarm := inMinutes("Wake", 1)
		snapshots <- scheduler.Snapshot{Alarms: []*domain.Definition{alarm}}

		synctest.Wait()
		require.Equal(t, 1, r.Armed())
		require.Zero(t, audio.playCount())

		time.Sleep(time.Minute)
		synctest.Wait()

		require.Equal(t, 1, audio.playCount())
		require.Equal(t, 1, r.Armed())
		require.Equal(t, alarm.Identifier, r.Ringing().Identifier)

		event := <-events
		require.Equal(t, EventRinging, event.Kind)
		require.Equal(t, alarm.Identifier, event.Alarm.Identifier)

		// The next ring is a day later.
		time.Sleep(23 * time.Hour)
		synctest.Wait()
		require.Equal(t, 1, audio.playCount())

		time.Sleep(time.Hour)
		synctest.Wait()
		require.Equal(t, 2, audio.playCount())

		event = <-events
		require.Equal(t, EventRinging, event.Kind)
	})
}

// TestRinger_Stop dismisses the ring once.
func TestRinger_Stop(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		audio := new(fakeAudio)
		r, snapshots, _ := startRinger(ctx, audio)

		require.False(t, r.Stop(ctx))

		snapshots <- scheduler.Snapshot{Alarms: []*domain.Definition{inMinutes("Wake", 1)}}

		time.Sleep(time.Minute)
		synctest.Wait()
		require.NotNil(t, r.Ringing())

		events := r.Subscribe(ctx)

		require.True(t, r.Stop(ctx))
		require.Nil(t, r.Ringing())

		event := <-events
		require.Equal(t, EventDismissed, event.Kind)
		require.NotNil(t, event.Alarm)

		require.False(t, r.Stop(ctx))
	})
}

// TestRinger_SnapshotReplacesTimers drops timers of alarms no longer pending.
func TestRinger_SnapshotReplacesTimers(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		audio := new(fakeAudio)
		r, snapshots, _ := startRinger(ctx, audio)

		snapshots <- scheduler.Snapshot{Alarms: []*domain.Definition{inMinutes("A", 1), inMinutes("B", 2)}}

		synctest.Wait()
		require.Equal(t, 2, r.Armed())

		snapshots <- scheduler.Snapshot{}

		synctest.Wait()
		require.Zero(t, r.Armed())

		time.Sleep(time.Hour)
		synctest.Wait()
		require.Zero(t, audio.playCount())
	})
}

// TestRinger_AudioFailureStillRings publishes the ring even when the sound cannot play.
func TestRinger_AudioFailureStillRings(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		audio := &fakeAudio{playErr: errTestPlay}
		r, snapshots, _ := startRinger(ctx, audio)
		events := r.Subscribe(ctx)

		snapshots <- scheduler.Snapshot{Alarms: []*domain.Definition{inMinutes("Wake", 1)}}

		time.Sleep(time.Minute)
		synctest.Wait()

		event := <-events
		require.Equal(t, EventRinging, event.Kind)
		require.Equal(t, 1, audio.playCount())
	})
}

// TestRinger_RunStopsOnCancel disarms and silences on shutdown.
func TestRinger_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		audio := new(fakeAudio)
		r, snapshots, done := startRinger(ctx, audio)

		snapshots <- scheduler.Snapshot{Alarms: []*domain.Definition{inMinutes("Wake", 1)}}

		synctest.Wait()
		require.Equal(t, 1, r.Armed())

		cancel()
		<-done

		require.Zero(t, r.Armed())
		require.False(t, audio.Stop())
	})
}

// TestEventKind_String names every kind.
func TestEventKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ringing", EventRinging.String())
	require.Equal(t, "dismissed", EventDismissed.String())
	require.Equal(t, "EventKind(0)", EventKind(0).String())
}
