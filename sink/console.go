package sink

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/fieldlog/fieldlog/core"
	"github.com/fieldlog/fieldlog/formatter"
)

// Console writes serialized entries to an io.Writer. It is the default
// debug-console sink. Writes happen under a mutex so independent builders
// sharing one sink never interleave partial lines.
type Console struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex
	buf             bytes.Buffer
	stats           *Stats
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: JSONFormatter)
	Formatter formatter.Formatter
}

// NewConsole creates a new console sink
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewJSONFormatter(formatter.Config{})
	}

	c := &Console{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}
	// Cache BufferFormatter for the single-write path
	c.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	c.buf.Grow(256)
	return c
}

// Flush serializes the entry and writes it to the underlying writer.
func (c *Console) Flush(entry core.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.bufferFormatter != nil {
		c.buf.Reset()
		c.bufferFormatter.FormatEntry(entry, &c.buf)
		_, err = c.writer.Write(c.buf.Bytes())
	} else {
		var line []byte
		line, err = c.formatter.Format(entry)
		if err == nil {
			_, err = c.writer.Write(line)
		}
	}
	if err != nil {
		c.stats.IncrementFailed()
		return err
	}
	c.stats.IncrementProcessed()
	return nil
}

// Stats returns the sink's counters
func (c *Console) Stats() *Stats {
	return c.stats
}

// Close is a no-op; the sink does not own its writer.
func (c *Console) Close() error {
	return nil
}
