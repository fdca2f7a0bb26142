package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

var (
	mu     sync.Mutex
	out    io.Writer = os.Stdout
	debugf           = false

	infoLabel  = color.New(color.FgWhite, color.BgGreen).SprintFunc()
	warnLabel  = color.New(color.FgWhite, color.BgYellow).SprintFunc()
	errorLabel = color.New(color.FgRed).SprintFunc()
	debugLabel = color.New(color.FgCyan).SprintFunc()
)

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetDebug enables Debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugf = enabled
}

// WithRequestID adds request ID to context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func write(label func(a ...interface{}) string, level, requestID, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if requestID != "" {
		msg = fmt.Sprintf("[req_id=%s] %s", requestID, msg)
	}

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", label("["+level+"]"), msg)
}

// Info log information
func Info(format string, a ...interface{}) {
	write(infoLabel, "INFO", "", format, a...)
}

// InfoWithContext logs information with the request ID from ctx.
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	write(infoLabel, "INFO", RequestID(ctx), format, a...)
}

// Warn log warning
func Warn(format string, a ...interface{}) {
	write(warnLabel, "WARN", "", format, a...)
}

func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	write(warnLabel, "WARN", RequestID(ctx), format, a...)
}

// Error log error
func Error(format string, a ...interface{}) {
	write(errorLabel, "ERROR", "", format, a...)
}

func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	write(errorLabel, "ERROR", RequestID(ctx), format, a...)
}

// Debug only prints when SetDebug(true) was called.
func Debug(format string, a ...interface{}) {
	mu.Lock()
	enabled := debugf
	mu.Unlock()
	if enabled {
		write(debugLabel, "DEBUG", "", format, a...)
	}
}

// InfoStruct dumps values with spew.
func InfoStruct(a ...interface{}) {
	write(infoLabel, "INFO", "", "%s", spew.Sdump(a...))
}
