package alarm

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Trigger is the repeating rule of a Definition: a time of day, every day or
// on a single weekday.
type Trigger struct {
	Hour    int
	Minute  int
	Weekday Weekday
}

// DailyTrigger fires every day at hour:minute.
func DailyTrigger(hour, minute int) Trigger {
	return Trigger{Hour: hour, Minute: minute}
}

// WeeklyTrigger fires on day at hour:minute.
func WeeklyTrigger(day Weekday, hour, minute int) Trigger {
	return Trigger{Hour: hour, Minute: minute, Weekday: day}
}

// IsDaily reports whether the trigger is not scoped to a weekday.
func (t Trigger) IsDaily() bool {
	return t.Weekday == EveryDay
}

// CronSpec renders the trigger as a standard five-field cron expression.
func (t Trigger) CronSpec() string {
	dow := "*"
	if !t.IsDaily() {
		dow = fmt.Sprint(int(t.Weekday.Time()))
	}

	return fmt.Sprintf("%d %d * * %s", t.Minute, t.Hour, dow)
}

// Next returns the first trigger instant strictly after now truncated to the
// minute, in now's location. An instant equal to the current minute counts as
// passed.
func (t Trigger) Next(now time.Time) (time.Time, error) {
	schedule, err := cron.ParseStandard(t.CronSpec())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse trigger %q: %w", t.CronSpec(), err)
	}

	next := schedule.Next(now.Truncate(time.Minute))
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNoNextTrigger, t.CronSpec())
	}

	return next, nil
}

// String formats the trigger as "07:30 daily" or "07:30 mon".
func (t Trigger) String() string {
	return fmt.Sprintf("%02d:%02d %s", t.Hour, t.Minute, t.Weekday)
}
