package alarm

import (
	"fmt"
	"strings"
	"time"
)

// Weekday numbers days Sunday-first, 1 (Sunday) through 7 (Saturday).
// The zero value means "every day" inside a Trigger.
type Weekday int

// Days of the week.
const (
	EveryDay Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DaysPerWeek is the number of entries of a WeekdaySelection.
const DaysPerWeek = 7

// weekdayLabels holds the localized labels, index 0 is Sunday.
//
//nolint:gochecknoglobals // Fixed lookup table.
var weekdayLabels = [DaysPerWeek]string{
	"Воскресенье",
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
}

// weekdayShortNames are the names accepted by ParseWeekday, index 0 is Sunday.
//
//nolint:gochecknoglobals // Fixed lookup table.
var weekdayShortNames = [DaysPerWeek]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// WeekdayLabel maps 1..7 to a localized weekday name.
// Every other value, including 0 and negatives, yields the Saturday label.
func WeekdayLabel(n int) string {
	if n >= int(Sunday) && n < int(Saturday) {
		return weekdayLabels[n-1]
	}

	return weekdayLabels[DaysPerWeek-1]
}

// WeekdayOf returns the Sunday-first number of t's day.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday()) + Sunday
}

// Valid reports whether d names a concrete day.
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// Time converts d to the standard library weekday. EveryDay is not convertible.
func (d Weekday) Time() time.Weekday {
	return time.Weekday(d - Sunday)
}

// Label returns the localized name of d.
func (d Weekday) Label() string {
	return WeekdayLabel(int(d))
}

// String returns the short English name used on the command line.
func (d Weekday) String() string {
	if !d.Valid() {
		return "daily"
	}

	return weekdayShortNames[d-Sunday]
}

// ParseWeekday accepts short or full English names and Sunday-first numbers.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for i, name := range weekdayShortNames {
		day := Weekday(i) + Sunday
		if s == name || s == strings.ToLower(day.Time().String()) || s == fmt.Sprint(int(day)) {
			return day, nil
		}
	}

	return EveryDay, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}
