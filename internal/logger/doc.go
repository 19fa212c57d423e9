// Package logger wraps zap for the alarm clock binaries.
//
// A process-wide sugared logger is configured once from settings; every
// component receives a context and pulls a scoped logger out of it with
// FromContext, so names and key-value pairs added upstream (WithName, WithKV)
// follow the call chain into the scheduling core, the ringer and the transport.
package logger
