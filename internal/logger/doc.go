// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Infof, ErrorKV, etc.),
//   - a writer that turns host console lines into log entries.
//
// Services accept a context and extract the logger from it, so every
// console command and scheduler tick is logged with its own scope.
package logger
