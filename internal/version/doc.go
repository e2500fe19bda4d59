// Package version exposes build metadata shared by every binary.
//
// Version, Commit and BuildTime are injected at build time via Go ldflags.
package version
