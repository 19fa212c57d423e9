// Package scheduler is the alarm scheduling core.
//
// Core turns a title, a time of day and a weekday selection into one or many
// repeating definitions of the notification service, lists and deletes them,
// and keeps the in-memory snapshot of pending alarms. The snapshot is only
// ever touched by tasks running on the core's single task queue; presentation
// layers observe it through Subscribe.
package scheduler
