package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/taskdeck/internal/model"
	"github.com/existflow/taskdeck/internal/task"
	"github.com/existflow/taskdeck/internal/views"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the kanban board",
	Long: `Print the board grouped by status column.

Examples:
  taskdeck board
  taskdeck board --tag bug --priority high`,
	RunE: runBoard,
}

var (
	boardTag      string
	boardPriority string
	boardSearch   string
	boardArchived bool
)

func init() {
	boardCmd.Flags().StringVarP(&boardTag, "tag", "t", "all", "Filter by tag")
	boardCmd.Flags().StringVarP(&boardPriority, "priority", "p", "all", "Filter by priority")
	boardCmd.Flags().StringVar(&boardSearch, "search", "", "Free-text search")
	boardCmd.Flags().BoolVar(&boardArchived, "archived", false, "Include the archive column")
}

func runBoard(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	tasks := env.tasks.Query(task.Filter{
		Tag:      boardTag,
		Priority: boardPriority,
		Search:   boardSearch,
	})
	board := views.Kanban(tasks)

	columns := model.Statuses
	if !boardArchived {
		columns = columns[:len(columns)-1]
	}

	for _, status := range columns {
		col := board[status]
		fmt.Printf("\n%s (%d)\n", status.Label(), len(col))
		fmt.Println(strings.Repeat("─", 48))
		if len(col) == 0 {
			fmt.Println("  (empty)")
			continue
		}
		for _, t := range col {
			fmt.Printf("  %-8s  %-28s  %s\n", shortID(t.ID), truncate(t.Title, 28), t.Priority)
		}
	}
	fmt.Println()
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
