package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestTrigger_CronSpec renders daily and weekday-scoped cron expressions.
func TestTrigger_CronSpec(t *testing.T) {
	t.Parallel()

	require.Equal(t, "30 7 * * *", DailyTrigger(7, 30).CronSpec())
	require.Equal(t, "5 22 * * 0", WeeklyTrigger(Sunday, 22, 5).CronSpec())
	require.Equal(t, "0 6 * * 6", WeeklyTrigger(Saturday, 6, 0).CronSpec())
	require.Equal(t, "07:30 daily", DailyTrigger(7, 30).String())
	require.Equal(t, "22:05 sun", WeeklyTrigger(Sunday, 22, 5).String())
}

// TestTrigger_Next checks same-day, wraparound and multi-day-ahead occurrences.
func TestTrigger_Next(t *testing.T) {
	t.Parallel()

	// 2026-10-14 is a Wednesday.
	now := time.Date(2026, time.October, 14, 7, 0, 45, 500, time.UTC)

	next, err := DailyTrigger(7, 30).Next(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.October, 14, 7, 30, 0, 0, time.UTC), next)

	next, err = DailyTrigger(6, 0).Next(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.October, 15, 6, 0, 0, 0, time.UTC), next)

	// The current minute counts as passed.
	next, err = DailyTrigger(7, 0).Next(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.October, 15, 7, 0, 0, 0, time.UTC), next)

	// Monday is five days ahead.
	next, err = WeeklyTrigger(Monday, 8, 15).Next(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.October, 19, 8, 15, 0, 0, time.UTC), next)

	// Wednesday earlier today wraps a full week.
	next, err = WeeklyTrigger(Wednesday, 6, 0).Next(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.October, 21, 6, 0, 0, 0, time.UTC), next)
}

// TestTrigger_NextInvalid reports out-of-range rules.
func TestTrigger_NextInvalid(t *testing.T) {
	t.Parallel()

	_, err := DailyTrigger(25, 0).Next(time.Now())
	require.Error(t, err)
}
