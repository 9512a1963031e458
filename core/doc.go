// Package core defines the shared types of the fieldlog pipeline.
//
// It provides the Level type for the five severities, the Entry type that
// represents one fully assembled log event as a flat map of named values,
// and the reserved-name validation that keeps caller-staged fields from
// colliding with the keys the pipeline writes itself.
//
// Seven names are reserved: the entry-owned keys (name, level, timestamp)
// and the four exception-derived keys (exception_message,
// exception_stack_trace, exception_line_number, exception_type). Staging
// any of them fails with a *ReservedFieldError whose message tells the
// caller which set was hit.
//
// ExceptionFields decomposes an error into the four exception keys after
// unwrapping it to its root cause, following both the pkg/errors Cause
// convention and the standard Unwrap convention. Stack traces and line
// numbers are taken from pkg/errors stack-carrying errors when present
// and recorded as sentinels otherwise.
package core
