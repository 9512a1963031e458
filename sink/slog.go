package sink

import (
	"context"
	"log/slog"
	"sort"

	"github.com/fieldlog/fieldlog/core"
)

// Slog forwards entries to a log/slog.Logger, so the builder can feed any
// handler from the standard ecosystem. The entry's message and level map
// onto the slog record, its name and staged fields become attrs. The
// timestamp key is dropped because slog stamps records itself.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a sink backed by the given slog.Logger.
func NewSlog(l *slog.Logger) *Slog {
	return &Slog{logger: l}
}

// Flush converts the entry to a slog record and hands it to the logger.
func (s *Slog) Flush(entry core.Entry) error {
	keys := make([]string, 0, len(entry))
	for k := range entry {
		switch k {
		case core.KeyMessage, core.KeyLevel, core.KeyName, core.KeyTimestamp:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, 2*(len(keys)+1))
	args = append(args, core.KeyName, entry.Name())
	for _, k := range keys {
		args = append(args, k, entry[k])
	}

	s.logger.Log(context.Background(), slogLevel(entry.Level()), entry.Message(), args...)
	return nil
}

// Close is a no-op; the sink does not own the slog.Logger.
func (s *Slog) Close() error {
	return nil
}

// slogLevel maps entry level strings onto the four slog levels. Panic has
// no slog equivalent and collapses onto error.
func slogLevel(level string) slog.Level {
	switch level {
	case core.DebugLevel.String():
		return slog.LevelDebug
	case core.WarningLevel.String():
		return slog.LevelWarn
	case core.ErrorLevel.String(), core.PanicLevel.String():
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
