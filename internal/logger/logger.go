package logger

import (
	"github.com/fatih/color" // Colored console output for the different log levels
)

// Colorized printing functions for the log levels, built with fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the level. Logging is purely
// observational: every component reports status through these and they never
// influence control flow.

// Info logs informational progress messages in cyan.
var Info = color.New(color.FgCyan).PrintfFunc()

// Success logs completion messages in green.
// Green marks the happy path: a task that finished, a run that completed.
var Success = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta.
// Magenta stands out and signals caution without being too alarming.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red to draw immediate attention.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages when enabled via Init, otherwise it is a no-op.
// It defaults to the no-op so components can call it safely even if Init was
// never run (e.g. from tests).
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When enabled, Debug prints dimmed messages; when disabled it is reassigned
// to a no-op that silently drops debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgHiBlack).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
