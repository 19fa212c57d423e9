// Package alarm implements the gRPC transport for the alarm clock.
//
// The server adapts the scheduling core and the ringer to the protobuf
// messages of alarm.v1.AlarmService.
package alarm
