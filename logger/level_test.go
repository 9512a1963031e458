package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]Level{
		"debug":   DebugLevel,
		"DEBUG":   DebugLevel,
		"info":    InfoLevel,
		"warn":    WarningLevel,
		"warning": WarningLevel,
		"WARNING": WarningLevel,
		"error":   ErrorLevel,
		"panic":   PanicLevel,
		"unknown": InfoLevel,
		"":        InfoLevel,
	}

	for input, want := range tcs {
		assert.Equal(t, want, ParseLevel(input), "input %q", input)
	}
}
