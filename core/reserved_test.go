package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFieldKey_Reserved(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		key       string
		exception bool
	}{
		"name":                  {key: KeyName},
		"level":                 {key: KeyLevel},
		"timestamp":             {key: KeyTimestamp},
		"exception message":     {key: KeyExceptionMessage, exception: true},
		"exception stack trace": {key: KeyExceptionStackTrace, exception: true},
		"exception line number": {key: KeyExceptionLineNumber, exception: true},
		"exception type":        {key: KeyExceptionType, exception: true},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := CheckFieldKey(tc.key)
			require.Error(t, err)

			var rfe *ReservedFieldError
			require.True(t, errors.As(err, &rfe))
			assert.Equal(t, tc.key, rfe.Key)
			assert.Equal(t, tc.exception, rfe.Exception)
			if tc.exception {
				assert.Contains(t, err.Error(), "WithException")
			} else {
				assert.NotContains(t, err.Error(), "WithException")
			}
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestCheckFieldKey_Allowed(t *testing.T) {
	t.Parallel()

	// "message" is deliberately not in the reserved set.
	for _, key := range []string{"message", "retries", "user_id", "exception", "Name", ""} {
		assert.NoError(t, CheckFieldKey(key), "key %q", key)
	}
}
