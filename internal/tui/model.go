// Package tui is the interactive terminal front end. The form has a text
// field and a regular/urgent switch that decides whether a category or a
// deadline field is shown. Below it the checklist routes actions back to the
// task list by row index.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arthur-debert/nanotasks/internal/app"
	"github.com/arthur-debert/nanotasks/internal/validation"
	"github.com/arthur-debert/nanotasks/tasklist"
	"github.com/arthur-debert/nanotasks/types"
)

type focus int

const (
	focusText focus = iota
	focusDetail
	focusList
)

// snapshotView receives emissions from the list. The model reads the latest
// snapshot when drawing.
type snapshotView struct {
	latest tasklist.Snapshot
}

func (v *snapshotView) Render(s tasklist.Snapshot) {
	v.latest = s
}

// Model is the bubbletea model
type Model struct {
	app  *app.App
	view *snapshotView

	text     textinput.Model
	category textinput.Model
	deadline textinput.Model
	priority types.Priority

	focus  focus
	cursor int
	status string
	err    string
}

// New builds the model and subscribes it to the app's list
func New(a *app.App) Model {
	text := textinput.New()
	text.Placeholder = "What needs to be done?"
	text.CharLimit = 256
	text.Width = 48
	text.Focus()

	category := textinput.New()
	category.Placeholder = "Category (optional)"
	category.CharLimit = 64
	category.Width = 32

	deadline := textinput.New()
	deadline.Placeholder = "Deadline (optional)"
	deadline.CharLimit = 32
	deadline.Width = 32

	view := &snapshotView{}
	a.Subscribe(view)

	return Model{
		app:      a,
		view:     view,
		text:     text,
		category: category,
		deadline: deadline,
		priority: types.PriorityRegular,
		focus:    focusText,
	}
}

// Run starts the interactive program
func Run(a *app.App) error {
	_, err := tea.NewProgram(New(a)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.text.Width = msg.Width - 20
		}
	}
	return m, nil
}

// detailInput returns the field shown for the selected priority
func (m *Model) detailInput() *textinput.Model {
	if m.priority == types.PriorityUrgent {
		return &m.deadline
	}
	return &m.category
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "tab":
		if m.priority == types.PriorityRegular {
			m.priority = types.PriorityUrgent
		} else {
			m.priority = types.PriorityRegular
		}
		if m.focus == focusDetail {
			return m.setFocus(focusDetail)
		}
		return m, nil
	case "down":
		if m.focus == focusText {
			return m.setFocus(focusDetail)
		}
		if !m.view.latest.Empty {
			return m.setFocus(focusList)
		}
		return m, nil
	case "up":
		if m.focus == focusDetail {
			return m.setFocus(focusText)
		}
		return m, nil
	case "esc":
		return m.setFocus(focusList)
	}

	var cmd tea.Cmd
	if m.focus == focusText {
		m.text, cmd = m.text.Update(msg)
	} else {
		input := m.detailInput()
		*input, cmd = input.Update(msg)
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	task, err := m.app.Submit(validation.Input{
		Text:     m.text.Value(),
		Mode:     string(m.priority),
		Category: m.category.Value(),
		Deadline: m.deadline.Value(),
	})
	if err != nil {
		m.err = err.Error()
		m.status = ""
		return m, nil
	}

	m.err = ""
	m.status = fmt.Sprintf("Added %q", task.DisplayText())
	m.text.Reset()
	m.category.Reset()
	m.deadline.Reset()
	return m.setFocus(focusText)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.view.latest.Rows

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			return m.setFocus(focusDetail)
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case " ", "x":
		if len(rows) > 0 {
			m.apply(m.app.Toggle, rows[m.cursor].Index, "Toggled")
		}
	case "d", "delete", "backspace":
		if len(rows) > 0 {
			m.apply(m.app.Delete, rows[m.cursor].Index, "Deleted")
			m.cursor = clampCursor(m.cursor, m.view.latest.Len())
			if m.view.latest.Empty {
				return m.setFocus(focusText)
			}
		}
	case "esc", "a", "i":
		return m.setFocus(focusText)
	}
	return m, nil
}

// apply routes a row action back to the app by the row's index
func (m *Model) apply(action func(int) error, index int, verb string) {
	if err := action(index); err != nil {
		if errors.Is(err, tasklist.ErrIndexOutOfRange) {
			m.err = "That task is no longer in the list"
		} else {
			m.err = err.Error()
		}
		return
	}
	m.err = ""
	m.status = fmt.Sprintf("%s task %d", verb, index)
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.text.Blur()
	m.category.Blur()
	m.deadline.Blur()

	switch f {
	case focusText:
		return m, m.text.Focus()
	case focusDetail:
		input := m.detailInput()
		return m, input.Focus()
	default:
		m.cursor = clampCursor(m.cursor, m.view.latest.Len())
		return m, nil
	}
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tasks"))
	b.WriteString("\n")
	b.WriteString(m.text.View())
	b.WriteString("\n")
	b.WriteString(priorityLabel(types.PriorityRegular, m.priority == types.PriorityRegular))
	b.WriteString("  ")
	b.WriteString(priorityLabel(types.PriorityUrgent, m.priority == types.PriorityUrgent))
	b.WriteString("\n")
	if m.priority == types.PriorityUrgent {
		b.WriteString(m.deadline.View())
	} else {
		b.WriteString(m.category.View())
	}
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderRows())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m Model) renderRows() string {
	snap := m.view.latest
	if snap.Empty {
		return emptyStyle.Render(tasklist.EmptyMessage) + "\n"
	}

	var b strings.Builder
	for i, row := range snap.Rows {
		cursor := "  "
		if m.focus == focusList && i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if row.Completed {
			box = "[x]"
		}
		b.WriteString(cursor + box + " " + rowStyle(row).Render(row.DisplayText) + "\n")
	}
	return b.String()
}

func (m Model) help() string {
	if m.focus == focusList {
		return "↑/↓ move • space toggle • d delete • esc back to form • q quit"
	}
	return "enter add • tab regular/urgent • ↑/↓ fields • esc list • ctrl+c quit"
}
