package model

import "time"

// Status is a kanban column. These five values are the only ones ever
// persisted.
type Status string

const (
	StatusReady      Status = "task-ready"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "needs-review"
	StatusDone       Status = "done"
	StatusArchived   Status = "archived-tasks"
)

// Statuses lists every column in board order.
var Statuses = []Status{StatusReady, StatusInProgress, StatusReview, StatusDone, StatusArchived}

// Valid reports whether s is one of the five known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusReady, StatusInProgress, StatusReview, StatusDone, StatusArchived:
		return true
	}
	return false
}

// Label returns the display name of the column.
func (s Status) Label() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "Review"
	case StatusDone:
		return "Done"
	case StatusArchived:
		return "Archived"
	}
	return string(s)
}

// Priority levels for tasks
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Rank orders priorities for sorting: high sorts before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// DefaultAssignee is used when a task has no roster member attached.
const DefaultAssignee = "Unassigned"

// Task represents a single board item
type Task struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Tag          string        `json:"tag"`
	Priority     Priority      `json:"priority"`
	Assignee     string        `json:"assignee"`
	DueDate      time.Time     `json:"dueDate"`
	Status       Status        `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	ArchivedDate *time.Time    `json:"archivedDate,omitempty"`
	TimeSpent    time.Duration `json:"timeSpent,omitempty"`
	Comments     []string      `json:"comments,omitempty"`
}

// IsOverdue returns true if the task is past its due date and still open.
// Done and archived tasks are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusDone || t.Status == StatusArchived {
		return false
	}
	return t.DueDate.Before(now)
}

// IsDueToday returns true if the task is due on the same calendar day as now.
func (t *Task) IsDueToday(now time.Time) bool {
	return SameDay(t.DueDate, now)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
