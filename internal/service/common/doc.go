// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper with timeouts, detection of
// the requesting user for audit logs, and a guard against running two
// servers over the same store.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
