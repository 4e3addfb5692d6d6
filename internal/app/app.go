// Package app wires the tracegraph CLI together: configuration, logging and
// the manifest-to-placeholder-plan run loop.
package app

import (
	"fmt"
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
	}
}

// printf writes a formatted line of the placeholder plan to the app's output.
func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.outW, format, args...)
}
