// Package notification implements the notification service the scheduling
// core talks to: a store of pending repeating alarms guarded by a user
// permission.
package notification
