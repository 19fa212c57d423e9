package scheduler

import (
	"errors"
	"fmt"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// errNoDefinition is returned for a nil definition.
var errNoDefinition = errors.New("definition is not set")

// NextFireDelay returns how long after now the definition fires next.
// The comparison is done at whole-minute granularity: a trigger in the current
// minute or earlier today wraps to its next day, and weekday-scoped triggers
// resolve to the next occurrence of their weekday, up to a week ahead.
// The result is always positive.
func NextFireDelay(def *domain.Definition, now time.Time) (time.Duration, error) {
	if def == nil {
		return 0, errNoDefinition
	}

	next, err := def.Trigger.Next(now)
	if err != nil {
		return 0, fmt.Errorf("next trigger of %s: %w", def.Identifier, err)
	}

	return next.Sub(now), nil
}
