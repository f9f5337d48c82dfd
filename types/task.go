// Package types defines the task model shared by the list and its views
package types

// Variant is the closed set of task kinds. Only Regular and Urgent implement it.
type Variant interface {
	Priority() Priority
	sealed()
}

// Regular is an everyday task with an optional free-text category
type Regular struct {
	Category string
}

// Urgent is a task flagged for attention with an optional deadline
type Urgent struct {
	Deadline string
}

func (Regular) Priority() Priority { return PriorityRegular }
func (Urgent) Priority() Priority  { return PriorityUrgent }

func (Regular) sealed() {}
func (Urgent) sealed()  {}

// Task is one unit of work. Text and variant are fixed at construction;
// completion is the only mutable state.
type Task struct {
	text      string
	variant   Variant
	completed bool
}

// New creates an incomplete task. A nil variant yields a generic task that
// carries the regular priority and renders its text unchanged.
func New(text string, v Variant) *Task {
	return &Task{text: text, variant: v}
}

// NewRegular creates a regular task
func NewRegular(text, category string) *Task {
	return New(text, Regular{Category: category})
}

// NewUrgent creates an urgent task
func NewUrgent(text, deadline string) *Task {
	return New(text, Urgent{Deadline: deadline})
}

func (t *Task) Text() string       { return t.text }
func (t *Task) Variant() Variant   { return t.variant }
func (t *Task) Completed() bool    { return t.completed }
func (t *Task) DisplayText() string { return DisplayText(t) }

// Priority returns the tag of the task's variant
func (t *Task) Priority() Priority {
	if t.variant == nil {
		return PriorityRegular
	}
	return t.variant.Priority()
}

// Toggle flips the completion state
func (t *Task) Toggle() {
	t.completed = !t.completed
}

// Clone returns an independent copy of the task
func (t *Task) Clone() *Task {
	c := *t
	return &c
}
