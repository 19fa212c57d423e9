// Package ringer turns pending alarms into audible rings.
//
// A Ringer follows the scheduling core's snapshots, keeps one timer per
// pending alarm and, when a timer fires, plays the configured sound and
// publishes a ring event until the user dismisses it.
package ringer
