// Package console dispatches autofixhandedness console commands.
//
// A Session lazily creates the periodic controller on the first start and
// keeps it for the rest of the host session.
package console
