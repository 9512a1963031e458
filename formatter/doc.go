// Package formatter defines how entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which formats into a caller-provided buffer. Sinks
// check for BufferFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on the
// write path.
//
// Both built-in formatters (JSONFormatter and TextFormatter) implement
// all three interfaces. They use a pooled bytes.Buffer internally and
// rely on Go's Append-style functions (time.AppendFormat,
// strconv.AppendInt) to avoid per-call allocations.
//
// Output order is deterministic: the four required keys come first
// (timestamp, level, name, message), then the staged fields sorted by
// key. Buffers larger than 64 KiB are not returned to the pool to
// prevent a single large entry from permanently inflating memory usage.
package formatter
