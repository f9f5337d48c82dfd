package types

// UrgentMarker is appended to the label of every urgent task
const UrgentMarker = "⚠️"

// DisplayText renders the human-readable label of a task from its current
// state. It is a pure function of the task.
func DisplayText(t *Task) string {
	switch v := t.variant.(type) {
	case Regular:
		if v.Category != "" {
			return t.text + " [" + v.Category + "]"
		}
		return t.text
	case Urgent:
		if v.Deadline != "" {
			return t.text + " " + UrgentMarker + " Due: " + v.Deadline
		}
		return t.text + " " + UrgentMarker
	default:
		return t.text
	}
}
