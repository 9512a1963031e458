// Package logger is the public API of fieldlog. Most users only need to
// import this package.
//
// A Builder is created once per logical unit of work (a request handler,
// a worker, a component) and reused across log calls. Fields staged with
// WithField and WithFields persist for the builder's lifetime, so context
// added once applies to every subsequent entry:
//
//	b := logger.New("checkout").WithSink(s)
//	b.WithField("order_id", id)
//	b.Info("order received")
//	b.Warning("payment retried")   // still carries order_id
//
// WithException is different: it decomposes an error's root cause into
// the four exception_* fields, which attach to exactly one emission and
// are purged afterwards:
//
//	b.WithException(err).Error("payment failed")
//	b.Info("continuing")           // no exception fields
//
// The seven reserved field names (name, level, timestamp, and the four
// exception_* keys) are rejected by WithField with a
// *core.ReservedFieldError before anything is staged.
//
// Emission is synchronous. Each leveled method assembles one immutable
// entry, stamps it, hands it to the sink, and returns the sink's error
// verbatim. Without an explicit sink, entries go to the default
// debug-console sink (JSON on stderr).
package logger
