// Package alarm contains the core domain types of the alarm clock.
//
// A Definition is one persisted trigger record: a title plus a Trigger that
// fires every day or on one weekday at a time of day. A user-facing alarm on
// several weekdays is materialized as several Definitions. WeekdaySelection is
// the transient input used to create them, AuthorizationState mirrors the
// permission of the notification store.
package alarm
