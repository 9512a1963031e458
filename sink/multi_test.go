package sink

import (
	"bytes"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlog/fieldlog/core"
)

// captureSink records every entry it receives and can be told to fail.
type captureSink struct {
	entries  []core.Entry
	flushErr error
	closed   bool
}

func (c *captureSink) Flush(entry core.Entry) error {
	c.entries = append(c.entries, entry)
	return c.flushErr
}

func (c *captureSink) Close() error {
	c.closed = true
	return nil
}

func TestMulti_FanOut(t *testing.T) {
	t.Parallel()

	a := &captureSink{}
	b := &captureSink{}
	m := NewMulti(a, b)

	entry := core.NewEntry("svc", core.InfoLevel, "hello", time.Now(), nil)
	require.NoError(t, m.Flush(entry))

	require.Len(t, a.entries, 1)
	require.Len(t, b.entries, 1)
	assert.Equal(t, "hello", a.entries[0].Message())
	assert.Equal(t, "hello", b.entries[0].Message())
}

func TestMulti_EveryChildSeesEntryDespiteFailure(t *testing.T) {
	t.Parallel()

	failing := &captureSink{flushErr: errors.New("child down")}
	healthy := &captureSink{}
	m := NewMulti(failing, healthy)

	entry := core.NewEntry("svc", core.ErrorLevel, "boom", time.Now(), nil)
	err := m.Flush(entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "child down")

	// The healthy child still received the entry.
	assert.Len(t, healthy.entries, 1)
}

func TestMulti_WritesToBuffers(t *testing.T) {
	t.Parallel()

	var bufA, bufB bytes.Buffer
	m := NewMulti(
		NewConsole(ConsoleConfig{Writer: &bufA}),
		NewConsole(ConsoleConfig{Writer: &bufB}),
	)

	entry := core.NewEntry("svc", core.InfoLevel, "fan", time.Now(), nil)
	require.NoError(t, m.Flush(entry))
	assert.Equal(t, bufA.String(), bufB.String())
	assert.Contains(t, bufA.String(), `"fan"`)
}

func TestMulti_CloseAll(t *testing.T) {
	t.Parallel()

	a := &captureSink{}
	b := &captureSink{}
	m := NewMulti(a, b)

	require.NoError(t, m.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
