package sink

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/fieldlog/fieldlog/core"
	"github.com/fieldlog/fieldlog/formatter"
)

// osRename is a variable to allow overriding os.Rename in tests
var osRename = os.Rename

// backupTimeFormat is the suffix appended to rotated files. Lexicographic
// order of backup names is chronological order.
const backupTimeFormat = "20060102T150405.000000000"

// File writes serialized entries to a log file with size-based rotation.
// When the file reaches MaxSize it is renamed to path.<timestamp> and a
// fresh file is opened; old backups beyond MaxBackups are removed.
type File struct {
	cfg             FileConfig
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex
	file            *os.File
	size            int64
	buf             bytes.Buffer
	stats           *Stats
}

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Path of the log file (required)
	Path string
	// Formatter to use (default: JSONFormatter)
	Formatter formatter.Formatter
	// MaxSize is the rotation threshold in bytes (0 disables rotation)
	MaxSize int64
	// MaxBackups is the number of rotated files to keep (0 keeps all)
	MaxBackups int
}

// NewFile creates a new file sink, opening (or creating) the file at
// cfg.Path in append mode.
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Path == "" {
		return nil, errors.New("file sink: path is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewJSONFormatter(formatter.Config{})
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "file sink: open")
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "file sink: stat")
	}

	s := &File{
		cfg:       cfg,
		formatter: cfg.Formatter,
		file:      f,
		size:      info.Size(),
		stats:     NewStats(),
	}
	s.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	s.buf.Grow(256)
	return s, nil
}

// Flush serializes the entry and appends it to the file, rotating first
// if the size threshold has been reached.
func (s *File) Flush(entry core.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rotateIfNeeded(); err != nil {
		s.stats.IncrementFailed()
		return err
	}

	s.buf.Reset()
	if s.bufferFormatter != nil {
		s.bufferFormatter.FormatEntry(entry, &s.buf)
	} else {
		line, err := s.formatter.Format(entry)
		if err != nil {
			s.stats.IncrementFailed()
			return err
		}
		s.buf.Write(line)
	}

	n, err := s.file.Write(s.buf.Bytes())
	if err != nil {
		s.stats.IncrementFailed()
		return errors.Wrap(err, "file sink: write")
	}
	s.size += int64(n)
	s.stats.IncrementProcessed()
	return nil
}

// rotateIfNeeded renames the current file to a timestamped backup and
// reopens a fresh one once MaxSize is reached. Must be called with mu held.
func (s *File) rotateIfNeeded() error {
	if s.cfg.MaxSize <= 0 || s.size < s.cfg.MaxSize {
		return nil
	}

	if err := s.file.Close(); err != nil {
		return errors.Wrap(err, "file sink: close for rotation")
	}
	backup := fmt.Sprintf("%s.%s", s.cfg.Path, time.Now().Format(backupTimeFormat))
	if err := osRename(s.cfg.Path, backup); err != nil {
		// Reopen the original file so the sink keeps appending; the
		// size stays above the threshold, so the next flush retries
		// the rotation.
		f, openErr := os.OpenFile(s.cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return errors.Wrapf(openErr, "file sink: rotate failed (%v), reopen", err)
		}
		s.file = f
		return errors.Wrap(err, "file sink: rotate")
	}

	f, err := os.OpenFile(s.cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "file sink: reopen after rotation")
	}
	s.file = f
	s.size = 0

	s.pruneBackups()
	return nil
}

// pruneBackups removes the oldest rotated files beyond MaxBackups. Cleanup
// is best-effort: only backups this sink created are considered, and a
// cleanup failure never blocks emission.
func (s *File) pruneBackups() {
	if s.cfg.MaxBackups <= 0 {
		return
	}
	matches, err := filepath.Glob(s.cfg.Path + ".*")
	if err != nil {
		return
	}

	prefix := s.cfg.Path + "."
	var backups []string
	for _, m := range matches {
		if _, parseErr := time.Parse(backupTimeFormat, strings.TrimPrefix(m, prefix)); parseErr == nil {
			backups = append(backups, m)
		}
	}
	if len(backups) <= s.cfg.MaxBackups {
		return
	}
	sort.Strings(backups)
	for _, old := range backups[:len(backups)-s.cfg.MaxBackups] {
		_ = os.Remove(old)
	}
}

// Stats returns the sink's counters
func (s *File) Stats() *Stats {
	return s.stats
}

// Close closes the underlying file.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
