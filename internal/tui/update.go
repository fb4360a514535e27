package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/taskdeck/internal/model"
	"github.com/existflow/taskdeck/internal/task"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeQuickAdd, ModeFilter:
			return m.updateInput(msg)
		case ModeConfirmDelete:
			return m.updateConfirm(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.taskCursor > 0 {
			m.taskCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.taskCursor < len(m.board[m.currentColumn()])-1 {
			m.taskCursor++
		}

	case key.Matches(msg, keys.Left):
		if m.colCursor > 0 {
			m.colCursor--
			m.clampCursor()
		}

	case key.Matches(msg, keys.Right):
		if m.colCursor < len(m.columns)-1 {
			m.colCursor++
			m.clampCursor()
		}

	case key.Matches(msg, keys.Add):
		m.mode = ModeQuickAdd
		m.input.Placeholder = "Enter task..."
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(msg, keys.Filter):
		m.mode = ModeFilter
		m.input.Placeholder = "Search..."
		m.input.SetValue(m.filterText)
		m.input.Focus()

	case key.Matches(msg, keys.Done):
		if t, ok := m.currentTask(); ok {
			m.moveTask(t, model.StatusDone)
		}

	case key.Matches(msg, keys.Archive):
		if t, ok := m.currentTask(); ok {
			m.moveTask(t, model.StatusArchived)
		}

	case key.Matches(msg, keys.MoveNext):
		if t, ok := m.currentTask(); ok {
			if next, ok := adjacentStatus(t.Status, 1); ok {
				m.moveTask(t, next)
			}
		}

	case key.Matches(msg, keys.MovePrev):
		if t, ok := m.currentTask(); ok {
			if prev, ok := adjacentStatus(t.Status, -1); ok {
				m.moveTask(t, prev)
			}
		}

	case key.Matches(msg, keys.Delete):
		if t, ok := m.currentTask(); ok {
			m.mode = ModeConfirmDelete
			m.confirmID = t.ID
			m.confirmTitle = t.Title
		}

	case key.Matches(msg, keys.Escape):
		if m.filterText != "" {
			m.filterText = ""
			m.refresh()
		}

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

func (m *Model) moveTask(t model.Task, status model.Status) {
	if _, err := m.tasks.SetStatus(t.ID, status); err != nil {
		m.message = fmt.Sprintf("Moved, but not saved: %v", err)
	} else {
		m.message = fmt.Sprintf("Moved \"%s\" to %s", truncate(t.Title, 24), status.Label())
	}
	m.refresh()
}

// adjacentStatus walks the board columns by delta.
func adjacentStatus(s model.Status, delta int) (model.Status, bool) {
	for i, status := range model.Statuses {
		if status == s {
			j := i + delta
			if j < 0 || j >= len(model.Statuses) {
				return s, false
			}
			return model.Statuses[j], true
		}
	}
	return s, false
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		value := m.input.Value()
		switch m.mode {
		case ModeQuickAdd:
			if value != "" {
				created, err := m.tasks.QuickAdd(value, task.QuickAddOpts{Status: m.currentColumn()})
				if err != nil {
					m.message = err.Error()
				} else {
					m.message = fmt.Sprintf("Added \"%s\"", truncate(created.Title, 24))
				}
			}
		case ModeFilter:
			m.filterText = value
		}
		m.mode = ModeNormal
		m.input.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Filter results update live as the user types.
	if m.mode == ModeFilter {
		m.filterText = m.input.Value()
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.tasks.Remove(m.confirmID)
		m.message = fmt.Sprintf("Deleted \"%s\"", truncate(m.confirmTitle, 24))
		m.refresh()
	}
	m.mode = ModeNormal
	m.confirmID = ""
	m.confirmTitle = ""
	return m, nil
}
