// Package config defines the settings shared by the host daemon and its
// command-line clients and provides helpers to load, validate and save them
// in YAML format.
//
// The Config type holds the daemon gRPC address, the world file location,
// the RPC timeout, the wall-clock length of one host tick and the log level.
package config
