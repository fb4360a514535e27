package views

import (
	"testing"

	"github.com/existflow/taskdeck/internal/model"
)

func TestKanbanAllBucketsPresent(t *testing.T) {
	board := Kanban(nil)
	if len(board) != len(model.Statuses) {
		t.Fatalf("expected %d buckets, got %d", len(model.Statuses), len(board))
	}
	for _, s := range model.Statuses {
		col, ok := board[s]
		if !ok || col == nil {
			t.Errorf("bucket %q missing or nil", s)
		}
	}
}

func TestKanbanPartition(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Status: model.StatusReady},
		{ID: "2", Status: model.StatusDone},
		{ID: "3", Status: model.StatusReady},
		{ID: "4", Status: model.StatusArchived},
	}

	board := Kanban(tasks)

	// Exhaustive: every task lands in exactly one bucket.
	total := 0
	for _, col := range board {
		total += len(col)
	}
	if total != len(tasks) {
		t.Errorf("board holds %d tasks, want %d", total, len(tasks))
	}

	// Insertion order within a bucket.
	ready := board[model.StatusReady]
	if len(ready) != 2 || ready[0].ID != "1" || ready[1].ID != "3" {
		t.Errorf("ready column = %v", ready)
	}
	if len(board[model.StatusInProgress]) != 0 {
		t.Error("empty column should stay empty")
	}
}
