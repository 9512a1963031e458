package core

import "fmt"

// ReservedFieldError reports an attempt to stage a field under a name the
// pipeline manages itself.
type ReservedFieldError struct {
	// Key is the reserved name the caller tried to set.
	Key string
	// Exception is true when Key belongs to the exception-derived set
	// rather than the required entry keys.
	Exception bool
}

// Error returns a message that distinguishes the two reserved sets and,
// for exception keys, points the caller at WithException.
func (e *ReservedFieldError) Error() string {
	if e.Exception {
		return fmt.Sprintf("field %q is reserved for exception data, use WithException to attach an error", e.Key)
	}
	return fmt.Sprintf("field %q is reserved and always written by the entry itself", e.Key)
}

// The two reserved sets; lookup tables rather than a branch chain so the
// validation stays data-driven.
var (
	requiredKeys = map[string]struct{}{
		KeyName:      {},
		KeyLevel:     {},
		KeyTimestamp: {},
	}
	exceptionKeys = map[string]struct{}{
		KeyExceptionMessage:    {},
		KeyExceptionStackTrace: {},
		KeyExceptionLineNumber: {},
		KeyExceptionType:       {},
	}
)

// CheckFieldKey reports whether key may be staged by a caller. It returns
// a *ReservedFieldError when the key belongs to either reserved set and
// nil otherwise.
func CheckFieldKey(key string) error {
	if _, ok := requiredKeys[key]; ok {
		return &ReservedFieldError{Key: key}
	}
	if _, ok := exceptionKeys[key]; ok {
		return &ReservedFieldError{Key: key, Exception: true}
	}
	return nil
}
