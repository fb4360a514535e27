package views

import (
	"time"

	"github.com/existflow/taskdeck/internal/model"
)

// Window is a chart time range resolved against createdAt.
type Window string

const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

// Days returns the day count for the window, defaulting to a week.
func (w Window) Days() int {
	switch w {
	case WindowMonth:
		return 30
	case WindowYear:
		return 365
	}
	return 7
}

// FilterWindow returns the tasks created within the window ending at now.
func FilterWindow(tasks []model.Task, w Window, now time.Time) []model.Task {
	cutoff := now.AddDate(0, 0, -w.Days())
	out := []model.Task{}
	for _, t := range tasks {
		if !t.CreatedAt.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// ActiveStatuses are the four board columns of the status breakdown;
// archived tasks are excluded from the active view.
var ActiveStatuses = []model.Status{
	model.StatusReady, model.StatusInProgress, model.StatusReview, model.StatusDone,
}

// StatusCounts builds the status histogram over the four active buckets.
func StatusCounts(tasks []model.Task) map[model.Status]int {
	counts := make(map[model.Status]int, len(ActiveStatuses))
	for _, s := range ActiveStatuses {
		counts[s] = 0
	}
	for _, t := range tasks {
		if t.Status != model.StatusArchived {
			counts[t.Status]++
		}
	}
	return counts
}

// PriorityCounts builds the priority histogram over the three fixed buckets.
func PriorityCounts(tasks []model.Task) map[model.Priority]int {
	counts := map[model.Priority]int{
		model.PriorityHigh:   0,
		model.PriorityMedium: 0,
		model.PriorityLow:    0,
	}
	for _, t := range tasks {
		counts[t.Priority]++
	}
	return counts
}

// AssigneeSplit is one bar of the team chart.
type AssigneeSplit struct {
	Assignee  string
	Completed int
	Pending   int
}

// TeamSplit builds the per-assignee completed/pending breakdown. The
// assignee set is derived from the tasks themselves, in first-seen order,
// with unassigned tasks bucketed under "Unassigned".
func TeamSplit(tasks []model.Task) []AssigneeSplit {
	index := map[string]int{}
	out := []AssigneeSplit{}
	for _, t := range tasks {
		name := t.Assignee
		if name == "" {
			name = model.DefaultAssignee
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, AssigneeSplit{Assignee: name})
		}
		if t.Status == model.StatusDone {
			out[i].Completed++
		} else {
			out[i].Pending++
		}
	}
	return out
}

// TagCounts builds the per-tag histogram. Untagged tasks count under
// "untagged".
func TagCounts(tasks []model.Task) map[string]int {
	counts := map[string]int{}
	for _, t := range tasks {
		tag := t.Tag
		if tag == "" {
			tag = "untagged"
		}
		counts[tag]++
	}
	return counts
}

// Point is one day of a time series.
type Point struct {
	Day   time.Time
	Count int
}

// windowDays returns the window's days oldest first, ending at now's day.
func windowDays(w Window, now time.Time) []time.Time {
	n := w.Days()
	days := make([]time.Time, 0, n)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := n - 1; i >= 0; i-- {
		days = append(days, start.AddDate(0, 0, -i))
	}
	return days
}

// Trend builds the daily completion series: for each day in the window,
// the count of done tasks whose due date falls on that day. Not cumulative.
func Trend(tasks []model.Task, w Window, now time.Time) []Point {
	series := make([]Point, 0, w.Days())
	for _, day := range windowDays(w, now) {
		count := 0
		for _, t := range tasks {
			if t.Status == model.StatusDone && model.SameDay(t.DueDate, day) {
				count++
			}
		}
		series = append(series, Point{Day: day, Count: count})
	}
	return series
}

// Burndown builds the remaining-work series: for each day in the window,
// the count of tasks created on or before that day that were not yet done
// as of that day.
func Burndown(tasks []model.Task, w Window, now time.Time) []Point {
	series := make([]Point, 0, w.Days())
	for _, day := range windowDays(w, now) {
		endOfDay := day.AddDate(0, 0, 1)
		count := 0
		for _, t := range tasks {
			if t.CreatedAt.Before(endOfDay) && (t.Status != model.StatusDone || t.DueDate.After(day)) {
				count++
			}
		}
		series = append(series, Point{Day: day, Count: count})
	}
	return series
}

// CycleTime returns the mean due-minus-created duration in days per
// priority, over done tasks only. Empty buckets yield 0, never NaN.
func CycleTime(tasks []model.Task) map[model.Priority]float64 {
	sums := map[model.Priority]float64{}
	counts := map[model.Priority]int{}
	for _, t := range tasks {
		if t.Status != model.StatusDone {
			continue
		}
		sums[t.Priority] += t.DueDate.Sub(t.CreatedAt).Hours() / 24
		counts[t.Priority]++
	}

	out := map[model.Priority]float64{}
	for _, p := range model.Priorities {
		if counts[p] == 0 {
			out[p] = 0
			continue
		}
		out[p] = sums[p] / float64(counts[p])
	}
	return out
}
