// Package pending persists the notification store: the pending alarm
// definitions and the authorization state.
//
// FileRepository keeps a single JSON document on disk and exposes a
// Repository interface that the notification center depends on. Editing the
// authorization field of the file by hand stands in for changing the
// permission in system settings.
package pending
