// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC console client with timeouts, a process
// probe for the host daemon and a helper that detects the current system
// actor (hostname/username) for audit purposes.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
