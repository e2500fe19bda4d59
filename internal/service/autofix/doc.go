// Package autofix runs the glove handedness fix against the host world.
//
// FixOnce performs a single pass. Controller wraps the same pass in a
// periodic host callback that can be started, stopped and queried.
package autofix
