// Package sink provides the Sink interface and its built-in
// implementations for dispatching assembled entries to their final
// destination.
//
// The pipeline is synchronous: Flush is called once per entry and its
// completion (or failure) is fully observed before the triggering log
// call returns. There are no queues, no retries, and no fallback sinks;
// a Flush error propagates verbatim to the caller.
//
// Built-in sinks:
//
//   - Console writes serialized entries to any io.Writer (default:
//     stderr, JSON). Default() returns one; it is the fallback when a
//     builder is constructed without an explicit sink.
//   - File appends to a log file with size-based rotation and backup
//     pruning.
//   - Multi fans one entry out to multiple child sinks.
//   - Slog forwards entries to a log/slog.Logger, bridging into the
//     standard library's handler ecosystem.
//
// Console and File track processed and failed counts via the Stats type,
// which can be queried at runtime for monitoring.
package sink
