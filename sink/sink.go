package sink

import "github.com/fieldlog/fieldlog/core"

// Sink is the capability the entry builder depends on. It receives each
// fully assembled entry and decides its final disposition: console,
// file, network collector, anything. Flush is called synchronously, one
// entry at a time, and any error it returns surfaces unchanged at the
// leveled call that triggered the emission.
type Sink interface {
	// Flush consumes one entry.
	Flush(entry core.Entry) error

	// Close releases any resources the sink holds.
	Close() error
}

// Default returns the fallback sink used when the embedding application
// supplies none: JSON to the process's standard error stream. It carries
// no shared state, so every caller gets an independent instance.
func Default() Sink {
	return NewConsole(ConsoleConfig{})
}
