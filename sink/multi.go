package sink

import "github.com/fieldlog/fieldlog/core"

// Multi fans a single entry out to several sinks. Every child sees every
// entry even when an earlier one fails; when more than one child fails,
// the last error wins.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a new multi sink
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Flush passes the entry to all child sinks
func (m *Multi) Flush(entry core.Entry) error {
	var lastErr error
	for _, s := range m.sinks {
		if err := s.Flush(entry); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes all child sinks
func (m *Multi) Close() error {
	var lastErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
