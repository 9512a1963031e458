package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fieldlog/fieldlog/core"
)

// JSONFormatter formats entries as JSON, the reference encoding of the
// debug-console sink. Required keys come first in a fixed order, staged
// fields follow sorted by key so output is deterministic.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatJSONToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatEntry(entry core.Entry, buf *bytes.Buffer) {
	f.formatJSONToBuffer(entry, buf)
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(entry core.Entry, buf *bytes.Buffer) {
	buf.WriteByte('{')

	buf.WriteString(`"timestamp":"`)
	buf.Write(entry.Timestamp().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte('"')

	buf.WriteString(`,"level":"`)
	appendJSONString(buf, entry.Level())
	buf.WriteByte('"')

	buf.WriteString(`,"name":"`)
	appendJSONString(buf, entry.Name())
	buf.WriteByte('"')

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, entry.Message())
	buf.WriteByte('"')

	for _, k := range fieldKeys(entry) {
		buf.WriteString(`,"`)
		appendJSONString(buf, k)
		buf.WriteString(`":`)
		appendJSONValue(buf, entry[k])
	}

	buf.WriteString("}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONValue writes a JSON-encoded field value to the buffer
func appendJSONValue(buf *bytes.Buffer, v any) {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case string:
		buf.WriteByte('"')
		appendJSONString(buf, val)
		buf.WriteByte('"')
	case bool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), val))
	case int:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(val), 10))
	case int8:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(val), 10))
	case int16:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(val), 10))
	case int32:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(val), 10))
	case int64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), val, 10))
	case uint:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(val), 10))
	case uint8:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(val), 10))
	case uint16:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(val), 10))
	case uint32:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(val), 10))
	case uint64:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), val, 10))
	case float32:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), float64(val), 'f', -1, 32))
	case float64:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), val, 'f', -1, 64))
	case time.Time:
		buf.WriteByte('"')
		buf.Write(val.AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteByte('"')
	case time.Duration:
		buf.WriteByte('"')
		appendJSONString(buf, val.String())
		buf.WriteByte('"')
	case error:
		buf.WriteByte('"')
		appendJSONString(buf, val.Error())
		buf.WriteByte('"')
	default:
		buf.WriteByte('"')
		appendJSONString(buf, fmt.Sprintf("%v", val))
		buf.WriteByte('"')
	}
}
