package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// ProductID identifies the exporter in the PRODID property.
const ProductID = "-//oshokin//alarm-clock//EN"

// Layouts of iCalendar date-time values.
const (
	floatingLayout = "20060102T150405"
	utcLayout      = "20060102T150405Z"
)

// rruleWeekdays maps Sunday-first weekdays to rrule days.
//
//nolint:gochecknoglobals // Fixed lookup table.
var rruleWeekdays = map[domain.Weekday]rrule.Weekday{
	domain.Sunday:    rrule.SU,
	domain.Monday:    rrule.MO,
	domain.Tuesday:   rrule.TU,
	domain.Wednesday: rrule.WE,
	domain.Thursday:  rrule.TH,
	domain.Friday:    rrule.FR,
	domain.Saturday:  rrule.SA,
}

// Build converts defs into a calendar. DTSTART of every event is the alarm's
// next trigger after now, written as floating local time.
func Build(defs []*domain.Definition, now time.Time) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, def := range defs {
		event, err := toEvent(def, now)
		if err != nil {
			return nil, err
		}

		cal.Children = append(cal.Children, event.Component)
	}

	return cal, nil
}

// Export writes defs to w as an iCalendar document.
func Export(w io.Writer, defs []*domain.Definition, now time.Time) error {
	cal, err := Build(defs, now)
	if err != nil {
		return err
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	return nil
}

// RecurrenceRule returns the rule the trigger repeats with.
func RecurrenceRule(trigger domain.Trigger) *rrule.ROption {
	if trigger.IsDaily() {
		return &rrule.ROption{Freq: rrule.DAILY}
	}

	return &rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekdays[trigger.Weekday]},
	}
}

func toEvent(def *domain.Definition, now time.Time) (*ical.Event, error) {
	start, err := def.Trigger.Next(now)
	if err != nil {
		return nil, fmt.Errorf("next trigger of %s: %w", def.Identifier, err)
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, def.Identifier)
	event.Props.SetText(ical.PropSummary, def.Title)
	event.Props.SetText(ical.PropDescription, def.Body)
	event.Props.Set(dateTimeProp(ical.PropDateTimeStamp, now.UTC().Format(utcLayout)))
	event.Props.Set(dateTimeProp(ical.PropDateTimeStart, start.Format(floatingLayout)))

	if !def.CreatedAt.IsZero() {
		event.Props.Set(dateTimeProp(ical.PropCreated, def.CreatedAt.UTC().Format(utcLayout)))
	}

	rule := ical.NewProp(ical.PropRecurrenceRule)
	rule.Value = RecurrenceRule(def.Trigger).RRuleString()
	event.Props.Set(rule)

	event.Children = append(event.Children, audioAlarm())

	return event, nil
}

func dateTimeProp(name, value string) *ical.Prop {
	prop := ical.NewProp(name)
	prop.SetValueType(ical.ValueDateTime)
	prop.Value = value

	return prop
}

// audioAlarm sounds at the start of the event.
func audioAlarm() *ical.Component {
	alarm := ical.NewComponent(ical.CompAlarm)
	alarm.Props.SetText(ical.PropAction, "AUDIO")

	trigger := ical.NewProp(ical.PropTrigger)
	trigger.SetValueType(ical.ValueDuration)
	trigger.Value = "PT0S"
	alarm.Props.Set(trigger)

	return alarm
}
