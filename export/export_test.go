package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"github.com/arthur-debert/nanotasks/formats"
	"github.com/arthur-debert/nanotasks/tasklist"
	"github.com/arthur-debert/nanotasks/testutil"
)

func TestWrite(t *testing.T) {
	list, _ := testutil.ScenarioList(t)
	path := filepath.Join(t.TempDir(), "out", "tasks.md")

	if err := Write(context.Background(), path, list.Snapshot(), formats.Markdown, Options{}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := formats.Markdown.Render(list.Snapshot())
	if string(got) != string(want) {
		t.Errorf("file content = %q, want %q", got, want)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "tasks.md" && e.Name() != "tasks.md.lock" {
			t.Errorf("unexpected leftover file %q", e.Name())
		}
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Write(context.Background(), path, tasklist.Snapshot{Empty: true}, nil, Options{}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "  "+tasklist.EmptyMessage+"\n" {
		t.Errorf("unexpected content %q", got)
	}
}

func TestWriteFailsWhenLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")

	held := flock.New(path + lockSuffix)
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("could not take lock for test: %v", err)
	}
	defer func() { _ = held.Unlock() }()

	err = Write(context.Background(), path, tasklist.Snapshot{Empty: true}, formats.PlainText, Options{
		LockTimeout:   100 * time.Millisecond,
		RetryInterval: 10 * time.Millisecond,
	})
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("Write() error = %v, want ErrLocked", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("target must not be written while locked")
	}
}

type fakeLock struct {
	locked   bool
	err      error
	unlocked bool
}

func (f *fakeLock) TryLockContext(ctx context.Context, _ time.Duration) (bool, error) {
	return f.locked, f.err
}

func (f *fakeLock) Unlock() error {
	f.unlocked = true
	return nil
}

type fakeLocker struct {
	lock  *fakeLock
	paths []string
}

func (f *fakeLocker) New(path string) FileLock {
	f.paths = append(f.paths, path)
	return f.lock
}

func TestWriteUsesLocker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	t.Run("acquired", func(t *testing.T) {
		locker := &fakeLocker{lock: &fakeLock{locked: true}}
		if err := Write(context.Background(), path, tasklist.Snapshot{Empty: true}, formats.JSON, Options{Locker: locker}); err != nil {
			t.Fatal(err)
		}
		if len(locker.paths) != 1 || locker.paths[0] != path+".lock" {
			t.Errorf("lock paths = %v", locker.paths)
		}
		if !locker.lock.unlocked {
			t.Error("lock was not released")
		}
	})

	t.Run("lock error", func(t *testing.T) {
		boom := errors.New("boom")
		locker := &fakeLocker{lock: &fakeLock{err: boom}}
		err := Write(context.Background(), path, tasklist.Snapshot{Empty: true}, formats.JSON, Options{Locker: locker})
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want wrapped boom", err)
		}
	})

	t.Run("not acquired", func(t *testing.T) {
		locker := &fakeLocker{lock: &fakeLock{}}
		err := Write(context.Background(), path, tasklist.Snapshot{Empty: true}, formats.JSON, Options{Locker: locker})
		if !errors.Is(err, ErrLocked) {
			t.Errorf("error = %v, want ErrLocked", err)
		}
	})
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		format *formats.Format
		want   string
	}{
		{formats.PlainText, "tasks-2024-05-01T09-30-00.txt"},
		{formats.YAML, "tasks-2024-05-01T09-30-00.yaml"},
		{nil, "tasks-2024-05-01T09-30-00.txt"},
	}

	for _, tt := range tests {
		if got := Filename(tt.format, now); got != tt.want {
			t.Errorf("Filename() = %q, want %q", got, tt.want)
		}
	}
}
