package tasklist

import (
	"github.com/arthur-debert/nanotasks/types"
)

// List is the ordered task collection
type List struct {
	tasks []*types.Task
	views []View
}

// New creates an empty list that emits to the given views
func New(views ...View) *List {
	l := &List{}
	for _, v := range views {
		l.Subscribe(v)
	}
	return l
}

// Subscribe registers a view for future emissions. Nil views are ignored.
func (l *List) Subscribe(v View) {
	if v == nil {
		return
	}
	l.views = append(l.views, v)
}

// Len returns the number of tasks
func (l *List) Len() int {
	return len(l.tasks)
}

// Add appends a task to the end of the list and emits a snapshot.
// The list takes ownership of the task; a nil task is ignored.
func (l *List) Add(task *types.Task) {
	if task == nil {
		return
	}
	l.tasks = append(l.tasks, task)
	l.Render()
}

// Delete removes the task at index, keeping the relative order of the rest
func (l *List) Delete(index int) error {
	if err := l.check("delete", index); err != nil {
		return err
	}

	remaining := make([]*types.Task, 0, len(l.tasks)-1)
	remaining = append(remaining, l.tasks[:index]...)
	remaining = append(remaining, l.tasks[index+1:]...)
	l.tasks = remaining

	l.Render()
	return nil
}

// Toggle flips the completion state of the task at index
func (l *List) Toggle(index int) error {
	if err := l.check("toggle", index); err != nil {
		return err
	}

	l.tasks[index].Toggle()
	l.Render()
	return nil
}

// Task returns a copy of the task at index
func (l *List) Task(index int) (*types.Task, error) {
	if err := l.check("get", index); err != nil {
		return nil, err
	}
	return l.tasks[index].Clone(), nil
}

// Snapshot builds the current view-model without emitting it
func (l *List) Snapshot() Snapshot {
	return newSnapshot(l.tasks)
}

// Render emits the current snapshot to every view
func (l *List) Render() {
	snap := l.Snapshot()
	for _, v := range l.views {
		v.Render(snap)
	}
}

// check rejects indexes outside the current sequence. A rejected call leaves
// the list untouched and emits nothing.
func (l *List) check(op string, index int) error {
	if index < 0 || index >= len(l.tasks) {
		return &IndexError{Op: op, Index: index, Len: len(l.tasks)}
	}
	return nil
}
