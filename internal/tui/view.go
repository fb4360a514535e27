package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/taskdeck/internal/model"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	board := m.renderBoard()
	statusBar := m.renderStatusBar()

	// Add modal if in input mode
	if m.mode == ModeQuickAdd {
		modal := m.renderInputModal("Quick Add")
		board = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeConfirmDelete {
		modal := m.renderConfirmModal()
		board = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeHelp {
		board = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, board, statusBar)
}

func (m Model) renderBoard() string {
	colWidth := m.width/len(m.columns) - 2
	if colWidth < 16 {
		colWidth = 16
	}

	cols := make([]string, 0, len(m.columns))
	for i, status := range m.columns {
		cols = append(cols, m.renderColumn(i, status, colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderColumn(idx int, status model.Status, width int) string {
	tasks := m.board[status]

	var s string
	header := fmt.Sprintf("%s (%d)", status.Label(), len(tasks))
	s += ColumnTitleStyle.Render(truncate(header, width-2)) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(repeat("─", width-2)) + "\n"

	if len(tasks) == 0 {
		s += HelpStyle.Render("  empty")
	}

	now := time.Now()
	for i, t := range tasks {
		cursor := "  "
		style := TaskItemStyle
		if idx == m.colCursor && i == m.taskCursor {
			cursor = "❯ "
			style = TaskItemSelectedStyle
		}
		if t.Status == model.StatusDone || t.Status == model.StatusArchived {
			style = TaskDoneStyle
		}

		title := truncate(t.Title, width-8)
		line := style.Render(fmt.Sprintf("%s%-*s", cursor, width-8, title))
		s += line + " " + PriorityBadge(t.Priority) + "\n"

		due := t.DueDate.Format("Jan 2")
		dueStyle := HelpStyle
		if t.IsOverdue(now) {
			dueStyle = lipgloss.NewStyle().Foreground(Danger)
		}
		s += dueStyle.Render("    "+due) + "\n"
	}

	colStyle := ColumnStyle
	if idx == m.colCursor {
		colStyle = ColumnFocusStyle
	}
	return colStyle.Width(width).Height(m.height - 4).Render(s)
}

func (m Model) renderStatusBar() string {
	// When in filter mode, show inline search input (like vim)
	if m.mode == ModeFilter {
		n := 0
		for _, col := range m.board {
			n += len(col)
		}
		matches := fmt.Sprintf(" [%d]", n)
		return StatusBarStyle.Width(m.width).Render("/" + m.input.View() + matches)
	}

	help := "/:search  a:add  x:done  A:archive  m/M:move  d:del  ?:help  q:quit"
	if m.filterText != "" {
		help = fmt.Sprintf("/%s  Esc:clear", m.filterText)
	} else if m.message != "" {
		help = m.message
	}

	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderInputModal(title string) string {
	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	content += m.input.View() + "\n\n"
	content += HelpStyle.Render("Enter:save  Esc:cancel")
	return ModalStyle.Render(content)
}

func (m Model) renderConfirmModal() string {
	content := lipgloss.NewStyle().Bold(true).Foreground(Danger).Render("Delete Task") + "\n\n"
	content += fmt.Sprintf("Delete \"%s\"?", truncate(m.confirmTitle, 40)) + "\n\n"
	content += HelpStyle.Render("y:delete  any other key:cancel")
	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("TaskDeck Keys"),
		"",
		"  ↑/k ↓/j     move within a column",
		"  ←/h →/l     switch columns",
		"  a           quick add into the focused column",
		"  x           mark done",
		"  A           archive",
		"  m / M       move task right / left",
		"  d           delete (asks for confirmation)",
		"  /           filter tasks by text",
		"  esc         clear filter / cancel",
		"  q           quit",
		"",
		HelpStyle.Render("press any key to close"),
	}

	var s string
	for _, l := range lines {
		s += l + "\n"
	}
	return lipgloss.Place(
		m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		ModalStyle.Render(s),
		lipgloss.WithWhitespaceChars(" "),
	)
}
