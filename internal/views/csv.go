package views

import (
	"strings"

	"github.com/existflow/taskdeck/internal/model"
)

// CSVHeader is the fixed export column order.
const CSVHeader = "Title,Due Date,Status,Priority,Tag"

// CSV renders the export: one row per task in collection order.
// Embedded delimiters are not escaped; this matches the historical export
// format and is tracked as an open issue.
func CSV(tasks []model.Task) string {
	rows := make([]string, 0, len(tasks)+1)
	rows = append(rows, CSVHeader)
	for _, t := range tasks {
		rows = append(rows, strings.Join([]string{
			t.Title,
			t.DueDate.Format("2006-01-02"),
			string(t.Status),
			string(t.Priority),
			t.Tag,
		}, ","))
	}
	return strings.Join(rows, "\n") + "\n"
}
