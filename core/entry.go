package core

import "time"

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// PanicLevel for unrecoverable failures; a severity only, emitting
	// at this level does not call the builtin panic
	PanicLevel
)

// String returns the lower-cased string form of the level. This is the
// exact value written into entries under the "level" key.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	case PanicLevel:
		return "panic"
	default:
		return "unknown"
	}
}

// Required entry keys, owned by the emission pipeline itself.
const (
	KeyMessage   = "message"
	KeyLevel     = "level"
	KeyName      = "name"
	KeyTimestamp = "timestamp"
)

// Exception-derived keys, owned by the exception decomposition.
const (
	KeyExceptionMessage    = "exception_message"
	KeyExceptionStackTrace = "exception_stack_trace"
	KeyExceptionLineNumber = "exception_line_number"
	KeyExceptionType       = "exception_type"
)

// Entry is the unit handed to a sink: one flat mapping of field names to
// values, holding the four required keys (message, level, name, timestamp)
// plus whatever fields the caller staged. An entry is assembled fresh for
// every emission and never mutated afterwards.
type Entry map[string]any

// NewEntry assembles a complete entry. Required keys are written first,
// then the staged fields are merged in on top.
func NewEntry(name string, level Level, msg string, t time.Time, fields map[string]any) Entry {
	e := make(Entry, len(fields)+4)
	e[KeyMessage] = msg
	e[KeyLevel] = level.String()
	e[KeyName] = name
	e[KeyTimestamp] = t
	for k, v := range fields {
		e[k] = v
	}
	return e
}

// Message returns the entry's message text.
func (e Entry) Message() string {
	s, _ := e[KeyMessage].(string)
	return s
}

// Level returns the entry's lower-cased level string.
func (e Entry) Level() string {
	s, _ := e[KeyLevel].(string)
	return s
}

// Name returns the entry's source name.
func (e Entry) Name() string {
	s, _ := e[KeyName].(string)
	return s
}

// Timestamp returns the entry's emission time.
func (e Entry) Timestamp() time.Time {
	t, _ := e[KeyTimestamp].(time.Time)
	return t
}
