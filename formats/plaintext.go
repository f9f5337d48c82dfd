package formats

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/nanotasks/tasklist"
)

const (
	iconPending   = "○"
	iconCompleted = "●"
)

// PlainText renders one line per task:
//
//	○ 0. Pay bills ⚠️ Due: 2024-05-01
//	● 1. Clean room [chores]
//
// The empty state renders the placeholder message.
var PlainText = &Format{
	Name:      "plaintext",
	Extension: ".txt",
	Render: func(snap tasklist.Snapshot) ([]byte, error) {
		if snap.Empty {
			return []byte("  " + tasklist.EmptyMessage + "\n"), nil
		}

		var b strings.Builder
		for _, row := range snap.Rows {
			fmt.Fprintf(&b, "  %s %d. %s\n", StatusIcon(row), row.Index, row.DisplayText)
		}
		return []byte(b.String()), nil
	},
}

// StatusIcon returns the glyph for a row's completion state
func StatusIcon(row tasklist.Row) string {
	if row.Completed {
		return iconCompleted
	}
	return iconPending
}

func init() {
	mustRegister(PlainText)
}
