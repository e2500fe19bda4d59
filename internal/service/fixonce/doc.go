// Package fixonce implements the one-shot fixhandedness command.
//
// When the host daemon runs on this machine the pass is requested over gRPC,
// so the daemon stays the only writer of the world file. Otherwise the world
// file is fixed in place.
package fixonce
