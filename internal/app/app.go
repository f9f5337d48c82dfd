// Package app holds the application context shared by the front ends. It is
// built once at startup and passed explicitly to each view layer.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/nanotasks/export"
	"github.com/arthur-debert/nanotasks/formats"
	"github.com/arthur-debert/nanotasks/internal/config"
	"github.com/arthur-debert/nanotasks/internal/logging"
	"github.com/arthur-debert/nanotasks/internal/validation"
	"github.com/arthur-debert/nanotasks/tasklist"
	"github.com/arthur-debert/nanotasks/types"
)

// App owns the task list for one session
type App struct {
	Config    config.Config
	Logger    *slog.Logger
	SessionID string

	mu   sync.Mutex
	list *tasklist.List
	now  func() time.Time
}

// New creates the application context with an empty list. A nil logger
// discards output.
func New(cfg config.Config, logger *slog.Logger, views ...tasklist.View) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	sessionID := uuid.NewString()

	return &App{
		Config:    cfg,
		Logger:    logger.With("session", sessionID),
		SessionID: sessionID,
		list:      tasklist.New(views...),
		now:       time.Now,
	}
}

// Subscribe registers a view and sends it the current snapshot
func (a *App) Subscribe(v tasklist.View) {
	if v == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.list.Subscribe(v)
	v.Render(a.list.Snapshot())
}

// Do runs fn with exclusive access to the list
func (a *App) Do(fn func(*tasklist.List) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn(a.list)
}

// Snapshot returns the current view-model
func (a *App) Snapshot() tasklist.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.list.Snapshot()
}

// Stats returns summary counts for the list
func (a *App) Stats() tasklist.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.list.Stats()
}

// Submit validates raw form input and adds the resulting task. Invalid input
// never reaches the list.
func (a *App) Submit(in validation.Input) (*types.Task, error) {
	params, err := validation.Validate(in, validation.Options{StrictDeadlines: a.Config.StrictDeadlines})
	if err != nil {
		a.Logger.Debug("input rejected", "op", "add", "error", err)
		return nil, err
	}

	task := params.Build()
	_ = a.Do(func(l *tasklist.List) error {
		l.Add(task)
		return nil
	})

	a.Logger.Debug("task added", "op", "add", "priority", task.Priority())
	return task.Clone(), nil
}

// Toggle flips the completion state of the task at index
func (a *App) Toggle(index int) error {
	_, err := a.Mutate(OpToggle, index)
	return err
}

// Delete removes the task at index
func (a *App) Delete(index int) error {
	_, err := a.Mutate(OpDelete, index)
	return err
}

// Positional operations accepted by Mutate
const (
	OpToggle = "toggle"
	OpDelete = "delete"
)

// Mutate applies a positional operation and returns the snapshot taken right
// after it, under the same lock, so the indexes it carries are current
func (a *App) Mutate(op string, index int) (tasklist.Snapshot, error) {
	var fn func(*tasklist.List, int) error
	switch op {
	case OpToggle:
		fn = (*tasklist.List).Toggle
	case OpDelete:
		fn = (*tasklist.List).Delete
	default:
		return tasklist.Snapshot{}, fmt.Errorf("unknown operation %q", op)
	}

	var snap tasklist.Snapshot
	err := a.Do(func(l *tasklist.List) error {
		if err := fn(l, index); err != nil {
			return err
		}
		snap = l.Snapshot()
		return nil
	})
	if err != nil {
		if errors.Is(err, tasklist.ErrIndexOutOfRange) {
			a.Logger.Warn("rejected index", "op", op, "index", index, "error", err)
		}
		return tasklist.Snapshot{}, err
	}

	a.Logger.Debug("task updated", "op", op, "index", index)
	return snap, nil
}

// Export writes the current snapshot in the named format. An empty path
// writes a timestamped file inside the configured export directory. It
// returns the path written.
func (a *App) Export(ctx context.Context, path, formatName string) (string, error) {
	if formatName == "" {
		formatName = a.Config.Format
	}
	format, err := formats.Get(formatName)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = filepath.Join(a.Config.ExportDir, export.Filename(format, a.now()))
	}

	snap := a.Snapshot()
	if err := export.Write(ctx, path, snap, format, export.Options{LockTimeout: a.Config.LockTimeout}); err != nil {
		a.Logger.Warn("export failed", "op", "export", "path", path, "error", err)
		return "", fmt.Errorf("failed to export tasks: %w", err)
	}

	a.Logger.Info("tasks exported", "op", "export", "path", path, "format", format.Name, "rows", snap.Len())
	return path, nil
}
