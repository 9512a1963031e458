package formatter

import (
	"bytes"
	"io"
	"sort"
	"sync"

	"github.com/fieldlog/fieldlog/core"
)

// Formatter defines the interface for entry formatters
type Formatter interface {
	// Format formats an entry into bytes
	Format(entry core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats an entry and writes it directly to the writer
	FormatTo(entry core.Entry, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats an entry into the given buffer.
	FormatEntry(entry core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for the
	// formatter's default)
	TimestampFormat string
}

// fieldKeys returns the entry's staged keys in sorted order. The four
// required keys are excluded; formatters write those first in a fixed
// position.
func fieldKeys(entry core.Entry) []string {
	keys := make([]string, 0, len(entry))
	for k := range entry {
		switch k {
		case core.KeyMessage, core.KeyLevel, core.KeyName, core.KeyTimestamp:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
