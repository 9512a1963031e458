package core

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// maxCauseDepth bounds the unwrap walk so a cyclic cause chain cannot
// spin forever. Real chains are a handful of frames deep.
const maxCauseDepth = 32

type causer interface {
	Cause() error
}

type wrapper interface {
	Unwrap() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// RootCause walks err's cause chain to the innermost error. It follows
// both the pkg/errors Cause convention and the Go 1.13 Unwrap convention,
// preferring Cause when a value implements both.
func RootCause(err error) error {
	for i := 0; i < maxCauseDepth; i++ {
		var next error
		switch v := err.(type) {
		case causer:
			next = v.Cause()
		case wrapper:
			next = v.Unwrap()
		}
		if next == nil {
			return err
		}
		err = next
	}
	return err
}

// ExceptionFields decomposes err into the four exception-derived entry
// fields. The chain is unwrapped to its root cause first, so context added
// by wrapper layers never shadows the original failure. Detail the root
// cause does not expose is recorded as a sentinel: an empty trace string
// and line number -1.
func ExceptionFields(err error) map[string]any {
	fields := map[string]any{
		KeyExceptionMessage:    "",
		KeyExceptionType:       "",
		KeyExceptionStackTrace: "",
		KeyExceptionLineNumber: -1,
	}
	if err == nil {
		return fields
	}

	root := RootCause(err)
	fields[KeyExceptionMessage] = root.Error()
	fields[KeyExceptionType] = fmt.Sprintf("%T", root)

	if st, ok := root.(stackTracer); ok {
		trace := st.StackTrace()
		fields[KeyExceptionStackTrace] = fmt.Sprintf("%+v", trace)
		if len(trace) > 0 {
			// errors.Frame renders its line number for the %d verb
			if line, convErr := strconv.Atoi(fmt.Sprintf("%d", trace[0])); convErr == nil {
				fields[KeyExceptionLineNumber] = line
			}
		}
	}
	return fields
}
