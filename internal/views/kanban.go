// Package views holds the derived view builders: pure functions over a
// task slice producing the board, calendar and chart projections. Nothing
// here touches the store; every view is recomputed from the collection at
// read time.
package views

import "github.com/existflow/taskdeck/internal/model"

// Kanban partitions tasks into the five fixed status buckets. Every bucket
// is present in the result even when empty; tasks keep their insertion
// order within a bucket.
func Kanban(tasks []model.Task) map[model.Status][]model.Task {
	board := make(map[model.Status][]model.Task, len(model.Statuses))
	for _, s := range model.Statuses {
		board[s] = []model.Task{}
	}
	for _, t := range tasks {
		board[t.Status] = append(board[t.Status], t)
	}
	return board
}
