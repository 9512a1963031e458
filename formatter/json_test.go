package formatter_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlog/fieldlog/core"
	"github.com/fieldlog/fieldlog/formatter"
)

func TestJSONFormatter_Format(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	entry := core.NewEntry("svc", core.InfoLevel, "request done", ts, map[string]any{
		"retries": 3,
		"ok":      true,
		"ratio":   0.5,
		"peer":    "db-1",
	})

	f := formatter.NewJSONFormatter(formatter.Config{})
	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(out, []byte("\n")))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "request done", decoded["message"])
	assert.Equal(t, "info", decoded["level"])
	assert.Equal(t, "svc", decoded["name"])
	assert.Equal(t, ts.Format(time.RFC3339Nano), decoded["timestamp"])
	assert.Equal(t, float64(3), decoded["retries"])
	assert.Equal(t, true, decoded["ok"])
	assert.Equal(t, 0.5, decoded["ratio"])
	assert.Equal(t, "db-1", decoded["peer"])
}

func TestJSONFormatter_Escaping(t *testing.T) {
	t.Parallel()

	entry := core.NewEntry("svc", core.ErrorLevel, "line\nbreak \"quoted\"", time.Now(), map[string]any{
		"path": `C:\logs`,
		"ctl":  "a\tb",
	})

	f := formatter.NewJSONFormatter(formatter.Config{})
	out, err := f.Format(entry)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "line\nbreak \"quoted\"", decoded["message"])
	assert.Equal(t, `C:\logs`, decoded["path"])
	assert.Equal(t, "a\tb", decoded["ctl"])
}

func TestJSONFormatter_DeterministicFieldOrder(t *testing.T) {
	t.Parallel()

	entry := core.NewEntry("svc", core.DebugLevel, "m", time.Now(), map[string]any{
		"zeta": 1, "alpha": 2, "mid": 3,
	})

	f := formatter.NewJSONFormatter(formatter.Config{})
	first, err := f.Format(entry)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		next, err := f.Format(entry)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(next))
	}

	s := string(first)
	assert.True(t, strings.Index(s, `"alpha"`) < strings.Index(s, `"mid"`))
	assert.True(t, strings.Index(s, `"mid"`) < strings.Index(s, `"zeta"`))
	// Required keys lead the object regardless of staged names.
	assert.True(t, strings.HasPrefix(s, `{"timestamp":`))
}

func TestJSONFormatter_ValueKinds(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entry := core.NewEntry("svc", core.InfoLevel, "m", time.Now(), map[string]any{
		"dur":   1500 * time.Millisecond,
		"when":  ts,
		"none":  nil,
		"big":   uint64(18446744073709551615),
		"other": struct{ A int }{A: 7},
	})

	f := formatter.NewJSONFormatter(formatter.Config{})
	out, err := f.Format(entry)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "1.5s", decoded["dur"])
	assert.Equal(t, ts.Format(time.RFC3339Nano), decoded["when"])
	assert.Nil(t, decoded["none"])
	assert.Equal(t, float64(18446744073709551615), decoded["big"])
	assert.Equal(t, "{7}", decoded["other"])
}

func TestJSONFormatter_FormatToMatchesFormat(t *testing.T) {
	t.Parallel()

	entry := core.NewEntry("svc", core.WarningLevel, "m", time.Now(), map[string]any{"k": "v"})
	f := formatter.NewJSONFormatter(formatter.Config{})

	direct, err := f.Format(entry)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.FormatTo(entry, &buf))
	assert.Equal(t, string(direct), buf.String())

	buf.Reset()
	f.FormatEntry(entry, &buf)
	assert.Equal(t, string(direct), buf.String())
}
