package ringer

import (
	"fmt"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// EventKind tells what happened to a ringing alarm.
type EventKind int

const (
	// EventRinging is published when an alarm fires.
	EventRinging EventKind = iota + 1
	// EventDismissed is published when the user stops the sound.
	EventDismissed
)

// String returns the lowercase name of the kind.
func (k EventKind) String() string {
	switch k {
	case EventRinging:
		return "ringing"
	case EventDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is a ring notification for presentation layers.
type Event struct {
	// Kind is what happened.
	Kind EventKind
	// Alarm is the definition that fired, nil when nothing was ringing.
	Alarm *domain.Definition
	// At is when it happened.
	At time.Time
}
