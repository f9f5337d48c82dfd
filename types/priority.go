package types

import (
	"fmt"
	"strings"
)

// Priority is the fixed classification of a task variant
type Priority string

const (
	PriorityRegular Priority = "regular"
	PriorityUrgent  Priority = "urgent"
)

// AllPriorities returns the priority tags in display order
func AllPriorities() []Priority {
	return []Priority{PriorityRegular, PriorityUrgent}
}

// ParsePriority maps a mode name to its priority tag. Matching ignores case
// and surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityRegular:
		return PriorityRegular, nil
	case PriorityUrgent:
		return PriorityUrgent, nil
	}
	return "", fmt.Errorf("unknown priority %q (want one of: regular, urgent)", s)
}

// String implements fmt.Stringer
func (p Priority) String() string {
	return string(p)
}
