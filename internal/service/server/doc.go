// Package server runs the host daemon.
//
// It loads the settings, opens the world file, starts the tick scheduler and
// serves the console over gRPC until the context is canceled.
package server
