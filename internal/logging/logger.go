package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger is the logging surface injected into the pipeline and translation gate.
type Logger interface {
	Log(msg string)
	LogWarning(msg string)
	LogError(msg string, err error)
	LogSuccess(msg string)
}

const (
	prefixInfo    = "INFO"
	prefixWarning = "WARN"
	prefixError   = "ERROR"
	prefixSuccess = "OK"
)

type consoleLogger struct {
	out io.Writer
}

// NewConsole returns a Logger writing plain lines to stderr.
func NewConsole() Logger {
	return &consoleLogger{out: os.Stderr}
}

// NewConsoleTo returns a Logger writing to the given writer.
func NewConsoleTo(w io.Writer) Logger {
	return &consoleLogger{out: w}
}

func (l *consoleLogger) Log(msg string) {
	fmt.Fprintf(l.out, "%-5s %s\n", prefixInfo, msg)
}

func (l *consoleLogger) LogWarning(msg string) {
	fmt.Fprintf(l.out, "%-5s %s\n", prefixWarning, msg)
}

func (l *consoleLogger) LogError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(l.out, "%-5s %s: %v\n", prefixError, msg, err)
		return
	}
	fmt.Fprintf(l.out, "%-5s %s\n", prefixError, msg)
}

func (l *consoleLogger) LogSuccess(msg string) {
	fmt.Fprintf(l.out, "%-5s %s\n", prefixSuccess, msg)
}

// Discard returns a Logger that drops everything. Handy in tests.
func Discard() Logger {
	return &consoleLogger{out: io.Discard}
}
