package calendar

import (
	"bytes"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// TestRecurrenceRule renders daily and weekday-scoped rules.
func TestRecurrenceRule(t *testing.T) {
	t.Parallel()

	require.Equal(t, "FREQ=DAILY", RecurrenceRule(domain.DailyTrigger(7, 30)).RRuleString())
	require.Equal(t, "FREQ=WEEKLY;BYDAY=MO", RecurrenceRule(domain.WeeklyTrigger(domain.Monday, 7, 30)).RRuleString())
	require.Equal(t, "FREQ=WEEKLY;BYDAY=SU", RecurrenceRule(domain.WeeklyTrigger(domain.Sunday, 7, 30)).RRuleString())
}

// TestExport_RoundTrip writes one VEVENT per definition and decodes it back.
func TestExport_RoundTrip(t *testing.T) {
	t.Parallel()

	// 2026-10-14 is a Wednesday.
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

	daily := domain.NewDefinition("Wake", domain.DailyTrigger(7, 30), now)
	monday := domain.NewDefinition("Gym", domain.WeeklyTrigger(domain.Monday, 6, 0), now)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, []*domain.Definition{daily, monday}, now))

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	uid, err := events[0].Props.Text(ical.PropUID)
	require.NoError(t, err)
	require.Equal(t, daily.Identifier, uid)

	summary, err := events[1].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	require.Equal(t, "Gym", summary)

	require.Equal(t, "FREQ=DAILY", events[0].Props.Get(ical.PropRecurrenceRule).Value)
	require.Equal(t, "FREQ=WEEKLY;BYDAY=MO", events[1].Props.Get(ical.PropRecurrenceRule).Value)

	require.Equal(t, "20261015T073000", events[0].Props.Get(ical.PropDateTimeStart).Value)
	require.Equal(t, "20261019T060000", events[1].Props.Get(ical.PropDateTimeStart).Value)

	require.Len(t, events[0].Children, 1)
	require.Equal(t, ical.CompAlarm, events[0].Children[0].Name)
	require.Equal(t, "AUDIO", events[0].Children[0].Props.Get(ical.PropAction).Value)
}

// TestBuild_Empty produces a calendar without events.
func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	cal, err := Build(nil, time.Now())
	require.NoError(t, err)
	require.Empty(t, cal.Events())

	productID, err := cal.Props.Text(ical.PropProductID)
	require.NoError(t, err)
	require.Equal(t, ProductID, productID)
}

// TestBuild_InvalidTrigger reports the broken definition.
func TestBuild_InvalidTrigger(t *testing.T) {
	t.Parallel()

	broken := domain.NewDefinition("Broken", domain.DailyTrigger(25, 0), time.Now())

	_, err := Build([]*domain.Definition{broken}, time.Now())
	require.Error(t, err)
}
