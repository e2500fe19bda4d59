package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConsoleWriter returns a writer that turns every written line into one
// entry of a logger named name, encoded like the rest of the logs and
// written to sink. Console output is part of the product, so the writer
// ignores the configured log level. Trailing newlines are trimmed by zap.
func ConsoleWriter(name string, sink io.Writer) io.Writer {
	core := zapcore.NewCore(
		newEncoder(),
		zapcore.Lock(zapcore.AddSync(sink)),
		zapcore.DebugLevel,
	)

	return zap.NewStdLog(zap.New(core).Named(name)).Writer()
}
