package export

import (
	"context"
	"time"

	"github.com/gofrs/flock"
)

// FileLock defines the interface for file locking operations
type FileLock interface {
	// TryLockContext attempts to acquire an exclusive lock, retrying until
	// ctx is done
	TryLockContext(ctx context.Context, retryInterval time.Duration) (bool, error)

	// Unlock releases the lock
	Unlock() error
}

// Locker creates FileLock instances
type Locker interface {
	// New creates a new FileLock for the given path
	New(path string) FileLock
}

// FlockLocker is the default Locker backed by github.com/gofrs/flock
type FlockLocker struct{}

// New implements Locker.New
func (FlockLocker) New(path string) FileLock {
	return flock.New(path)
}
