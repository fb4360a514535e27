package task

import (
	"sort"
	"strings"
	"time"

	"github.com/existflow/taskdeck/internal/model"
)

// FilterAll is the sentinel that disables a filter dimension.
const FilterAll = "all"

// Filter is a predicate set combined with logical AND. Zero or "all"
// values disable a dimension.
type Filter struct {
	Tag      string
	Priority string
	Status   string
	Search   string    // case-insensitive substring over title and description
	DueFrom  time.Time // inclusive
	DueTo    time.Time // inclusive
}

func (f Filter) matches(t *model.Task) bool {
	if f.Tag != "" && f.Tag != FilterAll && t.Tag != f.Tag {
		return false
	}
	if f.Priority != "" && f.Priority != FilterAll && string(t.Priority) != f.Priority {
		return false
	}
	if f.Status != "" && f.Status != FilterAll && string(t.Status) != f.Status {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}
	if !f.DueFrom.IsZero() && t.DueDate.Before(f.DueFrom) {
		return false
	}
	if !f.DueTo.IsZero() && t.DueDate.After(f.DueTo) {
		return false
	}
	return true
}

// Query returns the tasks matching every set dimension of f, preserving
// insertion order. No sort is applied; sorting is a separate operation.
func (r *Repo) Query(f Filter) []model.Task {
	out := []model.Task{}
	for i := range r.tasks {
		if f.matches(&r.tasks[i]) {
			out = append(out, r.tasks[i])
		}
	}
	return out
}

// SortKey selects the explicit sort applied by SortedBy.
type SortKey string

const (
	SortDueDate  SortKey = "due-date"
	SortPriority SortKey = "priority"
	SortTitle    SortKey = "title"
)

// SortedBy returns a new slice sorted by the given key: due date
// ascending, priority high before medium before low, or title
// lexicographically. The sort is stable.
func (r *Repo) SortedBy(key SortKey) []model.Task {
	return Sorted(r.All(), key)
}

// Sorted stably sorts a copy of tasks by key.
func Sorted(tasks []model.Task, key SortKey) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	switch key {
	case SortDueDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DueDate.Before(out[j].DueDate)
		})
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		})
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Title < out[j].Title
		})
	}
	return out
}

// DueWithin returns open tasks due in the window (now, now+d]. Used by
// the notification poller.
func (r *Repo) DueWithin(now time.Time, d time.Duration) []model.Task {
	out := []model.Task{}
	for i := range r.tasks {
		t := &r.tasks[i]
		if t.Status == model.StatusDone || t.Status == model.StatusArchived {
			continue
		}
		until := t.DueDate.Sub(now)
		if until > 0 && until <= d {
			out = append(out, *t)
		}
	}
	return out
}

// DueOn returns open tasks due on the same calendar day as day.
func (r *Repo) DueOn(day time.Time) []model.Task {
	out := []model.Task{}
	for i := range r.tasks {
		t := &r.tasks[i]
		if t.Status == model.StatusDone || t.Status == model.StatusArchived {
			continue
		}
		if model.SameDay(t.DueDate, day) {
			out = append(out, *t)
		}
	}
	return out
}
