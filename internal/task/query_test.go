package task

import (
	"testing"
	"time"

	"github.com/existflow/taskdeck/internal/model"
)

func seedQueryRepo(t *testing.T) *Repo {
	t.Helper()
	r, _ := openTestRepo(t)

	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
	}

	fixtures := []CreateParams{
		{Title: "Write report", Description: "quarterly numbers", Tag: "work", Priority: model.PriorityHigh, DueDate: day(3)},
		{Title: "Buy groceries", Description: "milk and bread", Tag: "home", Priority: model.PriorityLow, DueDate: day(1)},
		{Title: "Fix login bug", Description: "report from support", Tag: "work", Priority: model.PriorityMedium, DueDate: day(2)},
	}
	for _, p := range fixtures {
		if _, err := r.Create(p); err != nil {
			t.Fatalf("seed create: %v", err)
		}
	}
	return r
}

func titles(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestQueryIdentity(t *testing.T) {
	r := seedQueryRepo(t)

	for _, f := range []Filter{
		{},
		{Tag: FilterAll, Priority: FilterAll, Status: FilterAll},
	} {
		got := r.Query(f)
		if len(got) != r.Len() {
			t.Errorf("filter %+v returned %d tasks, want all %d", f, len(got), r.Len())
		}
	}
}

func TestQueryAND(t *testing.T) {
	r := seedQueryRepo(t)

	got := r.Query(Filter{Tag: "work", Priority: "high"})
	if len(got) != 1 || got[0].Title != "Write report" {
		t.Errorf("got %v, want [Write report]", titles(got))
	}

	got = r.Query(Filter{Tag: "work", Priority: "low"})
	if len(got) != 0 {
		t.Errorf("contradictory filter returned %v", titles(got))
	}
}

func TestQuerySearch(t *testing.T) {
	r := seedQueryRepo(t)

	// Matches title or description, case-insensitive.
	got := r.Query(Filter{Search: "REPORT"})
	if len(got) != 2 {
		t.Errorf("search matched %v, want both report tasks", titles(got))
	}
}

func TestQueryDueRange(t *testing.T) {
	r := seedQueryRepo(t)

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC)
	got := r.Query(Filter{DueFrom: from, DueTo: to})
	if len(got) != 1 || got[0].Title != "Fix login bug" {
		t.Errorf("due range matched %v", titles(got))
	}
}

func TestQueryPreservesInsertionOrder(t *testing.T) {
	r := seedQueryRepo(t)

	got := titles(r.Query(Filter{}))
	want := []string{"Write report", "Buy groceries", "Fix login bug"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order changed: got %v, want %v", got, want)
		}
	}
}

func TestSortedBy(t *testing.T) {
	r := seedQueryRepo(t)

	byDue := titles(r.SortedBy(SortDueDate))
	if byDue[0] != "Buy groceries" || byDue[2] != "Write report" {
		t.Errorf("due-date sort: %v", byDue)
	}

	byPri := titles(r.SortedBy(SortPriority))
	if byPri[0] != "Write report" || byPri[2] != "Buy groceries" {
		t.Errorf("priority sort: %v", byPri)
	}

	byTitle := titles(r.SortedBy(SortTitle))
	if byTitle[0] != "Buy groceries" || byTitle[2] != "Write report" {
		t.Errorf("title sort: %v", byTitle)
	}

	// Sorting never mutates the repository order.
	if got := titles(r.Query(Filter{})); got[0] != "Write report" {
		t.Errorf("sort mutated repo order: %v", got)
	}
}

func TestDueWithin(t *testing.T) {
	r, _ := openTestRepo(t)
	now := time.Now()

	soon, _ := r.Create(CreateParams{Title: "soon", Description: "d", DueDate: now.Add(30 * time.Minute)})
	r.Create(CreateParams{Title: "later", Description: "d", DueDate: now.Add(2 * time.Hour)})
	past, _ := r.Create(CreateParams{Title: "past", Description: "d", DueDate: now.Add(-time.Minute)})
	doneSoon, _ := r.Create(CreateParams{Title: "done soon", Description: "d", DueDate: now.Add(30 * time.Minute)})
	r.SetStatus(doneSoon.ID, model.StatusDone)

	got := r.DueWithin(now, time.Hour)
	if len(got) != 1 || got[0].ID != soon.ID {
		t.Errorf("DueWithin matched %v", titles(got))
	}
	_ = past
}

func TestDueOn(t *testing.T) {
	r, _ := openTestRepo(t)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	today, _ := r.Create(CreateParams{Title: "today", Description: "d", DueDate: day.Add(15 * time.Hour)})
	r.Create(CreateParams{Title: "tomorrow", Description: "d", DueDate: day.Add(26 * time.Hour)})
	doneToday, _ := r.Create(CreateParams{Title: "done today", Description: "d", DueDate: day.Add(9 * time.Hour)})
	r.SetStatus(doneToday.ID, model.StatusDone)

	got := r.DueOn(day)
	if len(got) != 1 || got[0].ID != today.ID {
		t.Errorf("DueOn matched %v", titles(got))
	}
}
