package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fieldlog/fieldlog/core"
)

// TextFormatter formats entries as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, buf)
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = map[string]string{
	core.DebugLevel.String():   " [DEBUG] ",
	core.InfoLevel.String():    " [INFO] ",
	core.WarningLevel.String(): " [WARNING] ",
	core.ErrorLevel.String():   " [ERROR] ",
	core.PanicLevel.String():   " [PANIC] ",
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Timestamp().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - use pre-formatted string
	if bracket, ok := levelBrackets[entry.Level()]; ok {
		buf.WriteString(bracket)
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	// Source name
	buf.WriteString(entry.Name())
	buf.WriteString(": ")

	// Message
	buf.WriteString(entry.Message())

	// Staged fields, sorted
	for _, k := range fieldKeys(entry) {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteByte('=')
		appendTextValue(buf, entry[k])
	}

	buf.WriteByte('\n')
}

// appendTextValue writes a field value in its plain text form
func appendTextValue(buf *bytes.Buffer, v any) {
	switch val := v.(type) {
	case nil:
		buf.WriteString("<nil>")
	case string:
		buf.WriteString(val)
	case bool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), val))
	case int:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(val), 10))
	case int64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), val, 10))
	case float64:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), val, 'f', -1, 64))
	case time.Time:
		buf.Write(val.AppendFormat(buf.AvailableBuffer(), time.RFC3339))
	case time.Duration:
		buf.WriteString(val.String())
	case error:
		buf.WriteString(val.Error())
	default:
		fmt.Fprintf(buf, "%v", val)
	}
}
