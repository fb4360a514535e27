package model

import (
	"testing"
	"time"
)

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	if Status("doing").Valid() {
		t.Error("unknown status reported valid")
	}
	if Status("").Valid() {
		t.Error("empty status reported valid")
	}
}

func TestPriorityRankOrder(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Errorf("priority ranks out of order: high=%d medium=%d low=%d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
	if Priority("urgent").Valid() {
		t.Error("unknown priority reported valid")
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	open := Task{Status: StatusInProgress, DueDate: past}
	if !open.IsOverdue(now) {
		t.Error("open task past due should be overdue")
	}

	open.DueDate = future
	if open.IsOverdue(now) {
		t.Error("open task due later should not be overdue")
	}

	done := Task{Status: StatusDone, DueDate: past}
	if done.IsOverdue(now) {
		t.Error("done task should never be overdue")
	}

	archived := Task{Status: StatusArchived, DueDate: past}
	if archived.IsOverdue(now) {
		t.Error("archived task should never be overdue")
	}
}

func TestIsDueToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	sameDay := Task{DueDate: time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)}
	if !sameDay.IsDueToday(now) {
		t.Error("task due later the same day should be due today")
	}

	nextDay := Task{DueDate: time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)}
	if nextDay.IsDueToday(now) {
		t.Error("task due tomorrow should not be due today")
	}
}
