package views

import (
	"sort"
	"time"

	"github.com/existflow/taskdeck/internal/model"
)

// PreviewLimit caps how many tasks a calendar cell lists before showing
// a remainder counter.
const PreviewLimit = 3

// Cell is one day of the calendar grid.
type Cell struct {
	Date    time.Time
	InMonth bool // false for the leading/trailing placeholders of month view
	Today   bool
	Tasks   []model.Task // all tasks due that day, sorted priority then due time
	Preview []model.Task // first PreviewLimit tasks
	More    int          // count beyond the preview
	Overdue bool         // any previewed task is overdue
}

// MonthGrid builds the month view: always 42 cells (6 weeks of 7 days),
// with days outside the month rendered as empty placeholders. Tasks land
// on the cell matching their due day.
func MonthGrid(tasks []model.Task, year int, month time.Month, now time.Time) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	startingDay := int(first.Weekday())
	totalDays := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, 42)
	day := 1
	for i := 0; i < 42; i++ {
		if i < startingDay || day > totalDays {
			cells = append(cells, Cell{})
			continue
		}
		date := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		cells = append(cells, buildCell(tasks, date, now, true))
		day++
	}
	return cells
}

// WeekGrid builds the week view: 7 cells starting from the Sunday of the
// week containing selected.
func WeekGrid(tasks []model.Task, selected time.Time, now time.Time) []Cell {
	sunday := selected.AddDate(0, 0, -int(selected.Weekday()))
	sunday = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, selected.Location())

	cells := make([]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		cells = append(cells, buildCell(tasks, sunday.AddDate(0, 0, i), now, true))
	}
	return cells
}

func buildCell(tasks []model.Task, date, now time.Time, inMonth bool) Cell {
	day := tasksForDate(tasks, date)
	sort.SliceStable(day, func(i, j int) bool {
		if day[i].Priority != day[j].Priority {
			return day[i].Priority.Rank() < day[j].Priority.Rank()
		}
		return day[i].DueDate.Before(day[j].DueDate)
	})

	c := Cell{
		Date:    date,
		InMonth: inMonth,
		Today:   model.SameDay(date, now),
		Tasks:   day,
		Preview: day,
	}
	if len(day) > PreviewLimit {
		c.Preview = day[:PreviewLimit]
		c.More = len(day) - PreviewLimit
	}
	for i := range c.Preview {
		if c.Preview[i].IsOverdue(now) {
			c.Overdue = true
			break
		}
	}
	return c
}

func tasksForDate(tasks []model.Task, date time.Time) []model.Task {
	out := []model.Task{}
	for _, t := range tasks {
		if model.SameDay(t.DueDate, date) {
			out = append(out, t)
		}
	}
	return out
}
