package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestWeekdayLabel covers the Sunday-first mapping and the Saturday fallback.
func TestWeekdayLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Воскресенье", WeekdayLabel(1))
	require.Equal(t, "Понедельник", WeekdayLabel(2))
	require.Equal(t, "Пятница", WeekdayLabel(6))
	require.Equal(t, "Суббота", WeekdayLabel(7))

	for _, n := range []int{0, -3, 8, 100} {
		require.Equal(t, "Суббота", WeekdayLabel(n), n)
	}

	require.Equal(t, WeekdayLabel(4), Wednesday.Label())
}

// TestWeekdayOf checks conversion from standard library weekdays.
func TestWeekdayOf(t *testing.T) {
	t.Parallel()

	// 2026-10-11 is a Sunday.
	sunday := time.Date(2026, time.October, 11, 9, 0, 0, 0, time.UTC)

	require.Equal(t, Sunday, WeekdayOf(sunday))
	require.Equal(t, Monday, WeekdayOf(sunday.AddDate(0, 0, 1)))
	require.Equal(t, Saturday, WeekdayOf(sunday.AddDate(0, 0, 6)))
	require.Equal(t, time.Wednesday, Wednesday.Time())
}

// TestParseWeekday accepts short, full and numeric forms.
func TestParseWeekday(t *testing.T) {
	t.Parallel()

	cases := map[string]Weekday{
		"sun":       Sunday,
		"Mon":       Monday,
		" tuesday ": Tuesday,
		"4":         Wednesday,
		"sat":       Saturday,
	}
	for s, want := range cases {
		got, err := ParseWeekday(s)
		require.NoError(t, err, s)
		require.Equal(t, want, got, s)
	}

	_, err := ParseWeekday("someday")
	require.ErrorIs(t, err, ErrUnknownWeekday)

	_, err = ParseWeekday("0")
	require.ErrorIs(t, err, ErrUnknownWeekday)
}

// TestWeekdaySelection verifies defaults, toggling and ordering.
func TestWeekdaySelection(t *testing.T) {
	t.Parallel()

	all := AllWeekdays()
	require.Len(t, all.Included(), DaysPerWeek)

	var none WeekdaySelection
	require.Empty(t, none.Included())

	s := SelectWeekdays(Wednesday, Monday, EveryDay, Weekday(9))
	require.Equal(t, []Weekday{Monday, Wednesday}, s.Included())
	require.True(t, s.Includes(Monday))
	require.False(t, s.Includes(Sunday))
	require.False(t, s.Includes(EveryDay))

	all.Set(Saturday, false)
	require.Equal(t, []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}, all.Included())
}
