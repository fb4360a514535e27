package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/taskdeck/internal/model"
	"github.com/existflow/taskdeck/internal/settings"
	"github.com/existflow/taskdeck/internal/task"
	"github.com/existflow/taskdeck/internal/views"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeQuickAdd
	ModeFilter
	ModeConfirmDelete
	ModeHelp
)

// Model is the main TUI model: a kanban board over the task repository.
type Model struct {
	tasks *task.Repo
	prefs *settings.Repo

	columns []model.Status
	board   map[model.Status][]model.Task

	// UI state
	width      int
	height     int
	mode       Mode
	colCursor  int
	taskCursor int

	// Input
	input textinput.Model

	// Filter (vim-style)
	filterText string

	// Pending delete confirmation
	confirmID    string
	confirmTitle string

	message string
}

// NewModel creates a new TUI model over the repositories.
func NewModel(tasks *task.Repo, prefs *settings.Repo) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter task..."
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		tasks:   tasks,
		prefs:   prefs,
		columns: boardColumns(prefs.Load().DefaultView),
		input:   ti,
	}
	m.refresh()
	return m
}

// boardColumns maps the defaultView preference to the visible columns.
func boardColumns(view string) []model.Status {
	switch view {
	case model.ViewArchived:
		return []model.Status{model.StatusArchived}
	case model.ViewActive:
		return []model.Status{
			model.StatusReady, model.StatusInProgress, model.StatusReview, model.StatusDone,
		}
	}
	return model.Statuses
}

// refresh recomputes the board from the repository and the active filter.
func (m *Model) refresh() {
	m.board = views.Kanban(m.tasks.Query(task.Filter{Search: m.filterText}))
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.colCursor >= len(m.columns) {
		m.colCursor = len(m.columns) - 1
	}
	col := m.board[m.columns[m.colCursor]]
	if m.taskCursor >= len(col) {
		m.taskCursor = len(col) - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}

// currentColumn returns the focused column's status.
func (m *Model) currentColumn() model.Status {
	return m.columns[m.colCursor]
}

// currentTask returns the task under the cursor, if any.
func (m *Model) currentTask() (model.Task, bool) {
	col := m.board[m.currentColumn()]
	if len(col) == 0 || m.taskCursor >= len(col) {
		return model.Task{}, false
	}
	return col[m.taskCursor], true
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
