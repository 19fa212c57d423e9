// Package calendar exports pending alarms as an iCalendar document so they can
// be imported into calendar applications. Each alarm becomes a recurring
// VEVENT with an audio VALARM at its start.
package calendar
