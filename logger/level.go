package logger

import (
	"strings"

	"github.com/fieldlog/fieldlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
	PanicLevel   = core.PanicLevel
)

// ParseLevel converts a string to a Level. Matching is case-insensitive
// and "warn" is accepted as an alias for warning; unknown strings fall
// back to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarningLevel
	case "error":
		return ErrorLevel
	case "panic":
		return PanicLevel
	default:
		return InfoLevel
	}
}
