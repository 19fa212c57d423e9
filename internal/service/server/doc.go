// Package server runs the alarm-server process: the scheduling core over the
// local notification store, the ringer and the gRPC API.
package server
