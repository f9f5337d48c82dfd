package tui

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arthur-debert/nanotasks/tasklist"
	"github.com/arthur-debert/nanotasks/types"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle     = lipgloss.NewStyle().Faint(true)
	activeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	regularStyle   = lipgloss.NewStyle()
	urgentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	completedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyStyle     = lipgloss.NewStyle().Faint(true).Italic(true)
	helpStyle      = lipgloss.NewStyle().Faint(true).MarginTop(1)

	titleCaser = cases.Title(language.English)
)

// rowStyle picks the style for a row from its priority and state
func rowStyle(row tasklist.Row) lipgloss.Style {
	if row.Completed {
		return completedStyle
	}
	if row.Priority == types.PriorityUrgent {
		return urgentStyle
	}
	return regularStyle
}

// priorityLabel renders a priority as a radio option
func priorityLabel(p types.Priority, selected bool) string {
	label := titleCaser.String(p.String())
	if selected {
		return activeStyle.Render("(•) " + label)
	}
	return labelStyle.Render("( ) " + label)
}
