// Package watcher reports changes to a single file, such as the region
// project file, with rapid successive writes coalesced into one event.
//
// The file's directory is watched rather than the file itself so that
// editors which save by writing a temporary file and renaming it over the
// original are still observed.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Errors returned by the watcher.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("directory of watched file does not exist")
)

// DefaultDelay is the quiet period after the last change before an event
// is delivered.
const DefaultDelay = 200 * time.Millisecond

// Op is a set of file operations.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// String returns the names of the operations in op joined by '|'.
func (op Op) String() string {
	if op == 0 {
		return "NONE"
	}
	names := []struct {
		op   Op
		name string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
		{OpChmod, "CHMOD"},
	}
	s := ""
	for _, n := range names {
		if op.Has(n.op) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	return s
}

// Has reports whether op includes o.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event is one coalesced change to the watched file.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDelay sets the coalescing delay.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// Watcher watches one file.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	delay  time.Duration
	logger *zap.Logger
}

// New starts watching path. The file itself need not exist yet, but its
// directory must.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(abs)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotExist, dir)
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:    fsw,
		path:   abs,
		delay:  DefaultDelay,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers events to handle until ctx is done, the watcher is closed
// or handle returns an error. Chmod-only changes are ignored. Run returns
// ctx.Err() on cancellation.
func (w *Watcher) Run(ctx context.Context, handle func(Event) error) error {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending Event
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case fe, ok := <-w.fsw.Events:
			if !ok {
				return ErrWatcherClosed
			}
			if filepath.Clean(fe.Name) != w.path {
				continue
			}
			op := convertOp(fe.Op)
			if op == 0 || op == OpChmod {
				continue
			}
			pending.Path = w.path
			pending.Op |= op
			pending.Time = time.Now()
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			w.logger.Warn("watch error", zap.String("path", w.path), zap.Error(err))

		case <-fire:
			fire = nil
			ev := pending
			pending = Event{}
			w.logger.Debug("file changed", zap.String("path", ev.Path), zap.Stringer("op", ev.Op))
			if err := handle(ev); err != nil {
				return err
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fsOp.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}
