// Package export writes a rendered task list snapshot to disk. It is a one-way
// dump for sharing or printing; nothing reads these files back.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/nanotasks/formats"
	"github.com/arthur-debert/nanotasks/tasklist"
)

const (
	defaultLockTimeout   = 2 * time.Second
	defaultRetryInterval = 50 * time.Millisecond
	lockSuffix           = ".lock"
)

// ErrLocked is returned when another writer holds the target's lock
var ErrLocked = errors.New("export target is locked")

// Options configures a write
type Options struct {
	// LockTimeout bounds how long Write waits for the lock. Zero means 2s.
	LockTimeout time.Duration

	// RetryInterval is the delay between lock attempts. Zero means 50ms.
	RetryInterval time.Duration

	// Locker overrides the lock implementation. Nil means flock.
	Locker Locker
}

func (o Options) withDefaults() Options {
	if o.LockTimeout <= 0 {
		o.LockTimeout = defaultLockTimeout
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = defaultRetryInterval
	}
	if o.Locker == nil {
		o.Locker = FlockLocker{}
	}
	return o
}

// Write renders snap with format and writes it to path. The write holds an
// exclusive lock on path+".lock" and replaces the target atomically.
func Write(ctx context.Context, path string, snap tasklist.Snapshot, format *formats.Format, opts Options) error {
	if format == nil {
		format = formats.PlainText
	}
	opts = opts.withDefaults()

	data, err := format.Render(snap)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format.Name, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	lock := opts.Locker.New(path + lockSuffix)
	lockCtx, cancel := context.WithTimeout(ctx, opts.LockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, opts.RetryInterval)
	if err != nil || !locked {
		if err == nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %s", ErrLocked, path)
		}
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	return writeAtomic(path, data)
}

// writeAtomic writes data to a temp file next to path and renames it over
// the target
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to move export into place: %w", err)
	}
	return nil
}

// Filename returns the default export file name for format at time now
func Filename(format *formats.Format, now time.Time) string {
	ext := ".txt"
	if format != nil && format.Extension != "" {
		ext = format.Extension
	}
	return "tasks-" + now.Format("2006-01-02T15-04-05") + ext
}
