package alarm

// WeekdaySelection flags which days of the week an alarm should ring on.
// Index 0 is Sunday. It is input to alarm creation only and never persisted.
type WeekdaySelection [DaysPerWeek]bool

// AllWeekdays returns the default selection with every day included.
func AllWeekdays() WeekdaySelection {
	var s WeekdaySelection
	for i := range s {
		s[i] = true
	}

	return s
}

// SelectWeekdays returns a selection including only days. Invalid days are ignored.
func SelectWeekdays(days ...Weekday) WeekdaySelection {
	var s WeekdaySelection
	for _, d := range days {
		s.Set(d, true)
	}

	return s
}

// Set includes or excludes d.
func (s *WeekdaySelection) Set(d Weekday, included bool) {
	if d.Valid() {
		s[d-Sunday] = included
	}
}

// Includes reports whether d is selected.
func (s WeekdaySelection) Includes(d Weekday) bool {
	return d.Valid() && s[d-Sunday]
}

// Included returns the selected days in Sunday-first order.
func (s WeekdaySelection) Included() []Weekday {
	days := make([]Weekday, 0, DaysPerWeek)

	for i, included := range s {
		if included {
			days = append(days, Weekday(i)+Sunday)
		}
	}

	return days
}
