package alarm

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultBody is the notification body of every alarm.
const DefaultBody = "Будильник"

var (
	// ErrUnknownWeekday is returned when a weekday name cannot be parsed.
	ErrUnknownWeekday = errors.New("unknown weekday")
	// ErrNoNextTrigger is returned when a trigger never fires again.
	ErrNoNextTrigger = errors.New("trigger has no next occurrence")
)

// Definition is one pending trigger record of the notification store.
type Definition struct {
	// Identifier is the opaque token assigned at creation.
	Identifier string
	// Title is the display string.
	Title string
	// Body is the notification text.
	Body string
	// Trigger describes when the record fires.
	Trigger Trigger
	// CreatedAt is when the record was created.
	CreatedAt time.Time
}

// NewDefinition creates a record with a fresh identifier.
func NewDefinition(title string, trigger Trigger, now time.Time) *Definition {
	return &Definition{
		Identifier: uuid.NewString(),
		Title:      title,
		Body:       DefaultBody,
		Trigger:    trigger,
		CreatedAt:  now,
	}
}

// Clone returns a copy of the definition.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}

	cloned := *d

	return &cloned
}

// CloneAll copies every definition of defs.
func CloneAll(defs []*Definition) []*Definition {
	if defs == nil {
		return nil
	}

	cloned := make([]*Definition, len(defs))
	for i, d := range defs {
		cloned[i] = d.Clone()
	}

	return cloned
}

// Submission is the outcome of submitting one record to the notification store.
type Submission struct {
	// Definition is the record that was submitted.
	Definition *Definition
	// Err is non-nil when the store refused the record.
	Err error
}
