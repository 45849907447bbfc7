// Package utils
package utils

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/global"
)

// Logger implements log.LoggerInterface on top of slog. It also installs
// itself as the slog default so the HTTP request middleware shares the
// same output.
type Logger struct {
	slog  *slog.Logger
	debug bool
}

func NewLogger() *Logger {
	logger := &Logger{}
	logger.Init(false)
	return logger
}

func (logger *Logger) Init(debug bool) {
	logger.debug = debug
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger.slog = slog.New(handler)
	slog.SetDefault(logger.slog)
}

type loggerShutdownCallback struct{}

func (c *loggerShutdownCallback) Invoke(_ context.Context) error {
	// sync fails on pipes and some terminals, nothing to do about it
	_ = os.Stdout.Sync()
	return nil
}

func (logger *Logger) ShutdownCallback() global.Callable {
	return &loggerShutdownCallback{}
}

func (logger *Logger) Debug(msg string, v ...interface{}) {
	logger.slog.Debug(msg, v...)
}

func (logger *Logger) DebugF(msg string, v ...interface{}) {
	logger.slog.Debug(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Info(msg string, v ...interface{}) {
	logger.slog.Info(msg, v...)
}

func (logger *Logger) InfoF(msg string, v ...interface{}) {
	logger.slog.Info(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Warn(msg string, v ...interface{}) {
	logger.slog.Warn(msg, v...)
}

func (logger *Logger) WarnF(msg string, v ...interface{}) {
	logger.slog.Warn(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Error(msg string, v ...interface{}) {
	logger.slog.Error(msg, v...)
}

func (logger *Logger) ErrorF(msg string, v ...interface{}) {
	logger.slog.Error(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Fatal(msg string, v ...interface{}) {
	color.Red(msg)
	logger.slog.Error(msg)
	os.Exit(1)
}

func (logger *Logger) FatalF(msg string, v ...interface{}) {
	formatted := fmt.Sprintf(msg, v...)
	color.Red(formatted)
	logger.slog.Error(formatted)
	os.Exit(1)
}
