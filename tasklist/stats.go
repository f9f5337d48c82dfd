package tasklist

import "github.com/arthur-debert/nanotasks/types"

// Stats holds summary counts over the list
type Stats struct {
	Total     int `json:"total" yaml:"total"`
	Completed int `json:"completed" yaml:"completed"`
	Pending   int `json:"pending" yaml:"pending"`
	Urgent    int `json:"urgent" yaml:"urgent"`
}

// Stats counts tasks by state
func (l *List) Stats() Stats {
	var s Stats
	for _, task := range l.tasks {
		s.Total++
		if task.Completed() {
			s.Completed++
		} else {
			s.Pending++
		}
		if task.Priority() == types.PriorityUrgent {
			s.Urgent++
		}
	}
	return s
}
