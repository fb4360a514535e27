package views

import (
	"math"
	"testing"
	"time"

	"github.com/existflow/taskdeck/internal/model"
)

var chartNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func chartFixtures() []model.Task {
	created := chartNow.AddDate(0, 0, -2)
	return []model.Task{
		{ID: "1", Tag: "work", Priority: model.PriorityHigh, Assignee: "Ana",
			Status: model.StatusDone, CreatedAt: created, DueDate: chartNow.AddDate(0, 0, -1)},
		{ID: "2", Tag: "work", Priority: model.PriorityMedium, Assignee: "Ana",
			Status: model.StatusInProgress, CreatedAt: created, DueDate: chartNow},
		{ID: "3", Tag: "", Priority: model.PriorityLow, Assignee: "",
			Status: model.StatusReady, CreatedAt: created, DueDate: chartNow.AddDate(0, 0, 1)},
		{ID: "4", Tag: "home", Priority: model.PriorityHigh, Assignee: "Bo",
			Status: model.StatusArchived, CreatedAt: created, DueDate: chartNow},
	}
}

func TestWindowDays(t *testing.T) {
	if WindowWeek.Days() != 7 || WindowMonth.Days() != 30 || WindowYear.Days() != 365 {
		t.Errorf("window sizes: week=%d month=%d year=%d", WindowWeek.Days(), WindowMonth.Days(), WindowYear.Days())
	}
	if Window("bogus").Days() != 7 {
		t.Error("unknown window should fall back to a week")
	}
}

func TestFilterWindow(t *testing.T) {
	tasks := []model.Task{
		{ID: "recent", CreatedAt: chartNow.AddDate(0, 0, -3)},
		{ID: "old", CreatedAt: chartNow.AddDate(0, 0, -10)},
	}
	got := FilterWindow(tasks, WindowWeek, chartNow)
	if len(got) != 1 || got[0].ID != "recent" {
		t.Errorf("FilterWindow kept %v", ids(got))
	}
	got = FilterWindow(tasks, WindowMonth, chartNow)
	if len(got) != 2 {
		t.Errorf("month window should keep both, kept %d", len(got))
	}
}

func TestStatusCounts(t *testing.T) {
	counts := StatusCounts(chartFixtures())
	if len(counts) != 4 {
		t.Fatalf("expected exactly 4 buckets, got %d", len(counts))
	}
	if counts[model.StatusDone] != 1 || counts[model.StatusInProgress] != 1 ||
		counts[model.StatusReady] != 1 || counts[model.StatusReview] != 0 {
		t.Errorf("counts = %v", counts)
	}
	if _, ok := counts[model.StatusArchived]; ok {
		t.Error("archived must not appear in the status histogram")
	}
}

func TestPriorityCounts(t *testing.T) {
	counts := PriorityCounts(chartFixtures())
	if counts[model.PriorityHigh] != 2 || counts[model.PriorityMedium] != 1 || counts[model.PriorityLow] != 1 {
		t.Errorf("counts = %v", counts)
	}

	empty := PriorityCounts(nil)
	for _, p := range model.Priorities {
		if v, ok := empty[p]; !ok || v != 0 {
			t.Errorf("bucket %q missing or nonzero on empty input", p)
		}
	}
}

func TestTeamSplit(t *testing.T) {
	split := TeamSplit(chartFixtures())
	if len(split) != 3 {
		t.Fatalf("expected 3 assignees, got %v", split)
	}
	// First-seen order.
	if split[0].Assignee != "Ana" || split[1].Assignee != model.DefaultAssignee || split[2].Assignee != "Bo" {
		t.Errorf("order = %v", split)
	}
	if split[0].Completed != 1 || split[0].Pending != 1 {
		t.Errorf("Ana split = %+v", split[0])
	}
	if split[1].Pending != 1 || split[1].Completed != 0 {
		t.Errorf("Unassigned split = %+v", split[1])
	}
}

func TestTagCounts(t *testing.T) {
	counts := TagCounts(chartFixtures())
	if counts["work"] != 2 || counts["home"] != 1 || counts["untagged"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestTrend(t *testing.T) {
	series := Trend(chartFixtures(), WindowWeek, chartNow)
	if len(series) != 7 {
		t.Fatalf("series has %d points, want 7", len(series))
	}
	// Oldest first, ending today.
	if !series[6].Day.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last point day = %v", series[6].Day)
	}
	// One done task due yesterday.
	if series[5].Count != 1 {
		t.Errorf("yesterday count = %d, want 1", series[5].Count)
	}
	if series[6].Count != 0 {
		t.Errorf("today count = %d, want 0", series[6].Count)
	}
}

func TestBurndown(t *testing.T) {
	series := Burndown(chartFixtures(), WindowWeek, chartNow)
	if len(series) != 7 {
		t.Fatalf("series has %d points, want 7", len(series))
	}
	// Before creation: nothing outstanding.
	if series[0].Count != 0 {
		t.Errorf("count before creation = %d, want 0", series[0].Count)
	}
	// Today: task 1 is done with a past due date, the other three remain.
	if series[6].Count != 3 {
		t.Errorf("today count = %d, want 3", series[6].Count)
	}
}

func TestCycleTime(t *testing.T) {
	ct := CycleTime(chartFixtures())
	// Only task 1 is done: created 2 days before a due date 1 day before now.
	if math.Abs(ct[model.PriorityHigh]-1.0) > 1e-9 {
		t.Errorf("high cycle time = %v, want 1 day", ct[model.PriorityHigh])
	}
	if ct[model.PriorityMedium] != 0 || ct[model.PriorityLow] != 0 {
		t.Errorf("empty buckets should be 0: %v", ct)
	}

	empty := CycleTime(nil)
	for _, p := range model.Priorities {
		if empty[p] != 0 {
			t.Errorf("bucket %q = %v on empty input, want 0", p, empty[p])
		}
	}
}
