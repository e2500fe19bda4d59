// Package client implements the autofixhandedness console command.
//
// The command connects to the host daemon, sends start, stop, end or a status
// query, and prints the status line the console returns.
package client
