package formats

import (
	"strings"

	"github.com/arthur-debert/nanotasks/tasklist"
	"github.com/arthur-debert/nanotasks/types"
)

// Markdown renders a task checklist. Urgent rows are bold.
var Markdown = &Format{
	Name:      "markdown",
	Extension: ".md",
	Render: func(snap tasklist.Snapshot) ([]byte, error) {
		var b strings.Builder
		b.WriteString("# Tasks\n\n")

		if snap.Empty {
			b.WriteString("_" + tasklist.EmptyMessage + "_\n")
			return []byte(b.String()), nil
		}

		for _, row := range snap.Rows {
			box := "[ ]"
			if row.Completed {
				box = "[x]"
			}
			text := row.DisplayText
			if row.Priority == types.PriorityUrgent {
				text = "**" + text + "**"
			}
			b.WriteString("- " + box + " " + text + "\n")
		}
		return []byte(b.String()), nil
	},
}

func init() {
	mustRegister(Markdown)
}
