// Package logger provides the process-wide structured logger.
package logger

import "sync"

// Levels accepted in config under log.level. Anything else falls back
// to InfoLevel.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	global *Logger
	once   sync.Once
)

// Get returns the singleton logger. The level only matters on the first
// call, so main() must call Get with the configured level before any
// other package logs.
func Get(level string) *Logger {
	once.Do(func() {
		global = newZapLogger(level)
	})
	return global
}
