package tasklist

import (
	"github.com/arthur-debert/nanotasks/types"
)

// EmptyMessage is the placeholder shown by views when the list has no tasks
const EmptyMessage = "No tasks yet. Add one above!"

// Row is the render-ready summary of one task
type Row struct {
	DisplayText string         `json:"displayText" yaml:"displayText"`
	Completed   bool           `json:"completed" yaml:"completed"`
	Priority    types.Priority `json:"priority" yaml:"priority"`
	Index       int            `json:"index" yaml:"index"`
}

// Classes returns the style classes for the row: "task-item", the priority
// tag, and "completed" when the task is done
func (r Row) Classes() []string {
	classes := []string{"task-item", string(r.Priority)}
	if r.Completed {
		classes = append(classes, "completed")
	}
	return classes
}

// Snapshot is the view-model emitted after every mutation. When the list is
// empty, Empty is true and Rows is nil.
type Snapshot struct {
	Empty bool  `json:"empty" yaml:"empty"`
	Rows  []Row `json:"rows" yaml:"rows"`
}

// Len returns the number of rows
func (s Snapshot) Len() int {
	return len(s.Rows)
}

func newSnapshot(tasks []*types.Task) Snapshot {
	if len(tasks) == 0 {
		return Snapshot{Empty: true}
	}

	rows := make([]Row, len(tasks))
	for i, task := range tasks {
		rows[i] = Row{
			DisplayText: types.DisplayText(task),
			Completed:   task.Completed(),
			Priority:    task.Priority(),
			Index:       i,
		}
	}
	return Snapshot{Rows: rows}
}
