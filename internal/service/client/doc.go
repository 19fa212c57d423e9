// Package client implements the alarmctl operations.
//
// Every operation loads settings, connects to the alarm server and prints a
// colored, human readable result. Watch keeps the connection open and prints
// snapshots and ring events as they arrive.
package client
