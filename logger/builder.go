package logger

import (
	"time"

	"github.com/fieldlog/fieldlog/core"
	"github.com/fieldlog/fieldlog/sink"
)

// Fields is a convenience type for staging several fields at once.
type Fields map[string]any

// Builder accumulates contextual fields for one logical unit of work and
// emits complete entries to its sink. The name is fixed at construction;
// staged fields persist across emissions until overwritten, except the
// exception-derived ones, which are purged after the single emission that
// follows WithException.
//
// A Builder is not safe for concurrent use: create one per goroutine or
// serialize access externally. Independent builders are safe to use from
// independent goroutines, each owns its own field storage.
type Builder struct {
	name   string
	sink   sink.Sink
	clock  core.Clock
	level  core.Level
	fields map[string]any
}

// New creates a Builder for the given source name. Entries go to the
// default debug-console sink until WithSink installs another one.
func New(name string) *Builder {
	return &Builder{
		name:   name,
		sink:   sink.Default(),
		clock:  time.Now,
		fields: make(map[string]any),
	}
}

// WithSink routes all subsequent emissions to s.
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithClock replaces the timestamp source. Useful for deterministic tests
// and for core.CoarseClock.
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithField stages key → value for every subsequent emission, overwriting
// any prior value for key. Reserved keys are rejected with a
// *core.ReservedFieldError before anything is staged.
func (b *Builder) WithField(key string, value any) (*Builder, error) {
	if err := core.CheckFieldKey(key); err != nil {
		return b, err
	}
	b.fields[key] = value
	return b, nil
}

// WithFields stages every pair in fields. It stops at the first reserved
// key it encounters; pairs applied before the failing one remain staged.
func (b *Builder) WithFields(fields Fields) (*Builder, error) {
	for k, v := range fields {
		if _, err := b.WithField(k, v); err != nil {
			return b, err
		}
	}
	return b, nil
}

// WithException stages the four exception-derived fields from err's root
// cause. Wrapper layers around the root are discarded, only the innermost
// error's message, type, stack trace, and line number are recorded. The
// fields ride along on exactly one subsequent emission.
func (b *Builder) WithException(err error) *Builder {
	for k, v := range core.ExceptionFields(err) {
		b.fields[k] = v
	}
	return b
}

// Debug emits an entry at debug level.
func (b *Builder) Debug(msg string) error {
	b.level = core.DebugLevel
	return b.write(msg)
}

// Info emits an entry at info level.
func (b *Builder) Info(msg string) error {
	b.level = core.InfoLevel
	return b.write(msg)
}

// Warning emits an entry at warning level.
func (b *Builder) Warning(msg string) error {
	b.level = core.WarningLevel
	return b.write(msg)
}

// Error emits an entry at error level.
func (b *Builder) Error(msg string) error {
	b.level = core.ErrorLevel
	return b.write(msg)
}

// Panic emits an entry at panic level. The name is the severity; the
// builtin panic is never called.
func (b *Builder) Panic(msg string) error {
	b.level = core.PanicLevel
	return b.write(msg)
}

// write assembles the entry, captures the timestamp, and flushes
// synchronously. The exception-field purge is deferred so a failing sink
// cannot leak one emission's exception context into the next entry.
func (b *Builder) write(msg string) error {
	defer func() {
		delete(b.fields, core.KeyExceptionMessage)
		delete(b.fields, core.KeyExceptionStackTrace)
		delete(b.fields, core.KeyExceptionLineNumber)
		delete(b.fields, core.KeyExceptionType)
	}()

	entry := core.NewEntry(b.name, b.level, msg, b.clock(), b.fields)
	return b.sink.Flush(entry)
}
