package benchmark

import (
	"github.com/pkg/errors"

	"github.com/fieldlog/fieldlog/core"
	"github.com/fieldlog/fieldlog/sink"
)

// benchErr builds a three-level cause chain for the exception benchmarks.
func benchErr() error {
	root := errors.New("disk full")
	return errors.Wrap(errors.Wrap(root, "write failed"), "request aborted")
}

type noopSink struct{}

func newNoopSink() sink.Sink {
	return &noopSink{}
}

func (s *noopSink) Flush(e core.Entry) error {
	_ = len(e)
	return nil
}

func (s *noopSink) Close() error {
	return nil
}
