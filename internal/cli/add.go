package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/existflow/taskdeck/internal/model"
	"github.com/existflow/taskdeck/internal/task"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task to the board.

Examples:
  taskdeck add "Ship release" -d "cut v2" -p high --due 2024-06-01
  taskdeck add "Buy groceries" --quick
  taskdeck add "Fix login bug" -d "session expiry" -t bug -a Alice`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDesc     string
	addTag      string
	addPriority string
	addAssignee string
	addDue      string
	addQuick    bool
)

func init() {
	addCmd.Flags().StringVarP(&addDesc, "desc", "d", "", "Task description (required unless --quick)")
	addCmd.Flags().StringVarP(&addTag, "tag", "t", "", "Tag label (default general)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority (high, medium, low)")
	addCmd.Flags().StringVarP(&addAssignee, "assignee", "a", "", "Assignee name")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().BoolVarP(&addQuick, "quick", "q", false, "Quick add with defaults")
}

func runAdd(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	title := strings.Join(args, " ")

	due, err := parseDue(addDue)
	if err != nil {
		return err
	}

	var created model.Task
	if addQuick {
		opts := task.QuickAddOpts{Tag: addTag, Priority: model.Priority(addPriority), DueDate: due}
		created, err = env.tasks.QuickAdd(title, opts)
	} else {
		created, err = env.tasks.Create(task.CreateParams{
			Title:       title,
			Description: addDesc,
			Tag:         addTag,
			Priority:    model.Priority(addPriority),
			Assignee:    addAssignee,
			DueDate:     due,
		})
	}
	if err != nil {
		return err
	}

	fmt.Printf("✓ Added [%s]: \"%s\" (%s, due %s)\n",
		shortID(created.ID), created.Title, created.Priority, created.DueDate.Format("Jan 2"))
	return nil
}

// parseDue accepts YYYY-MM-DD, "today" or "tomorrow"; empty means today.
func parseDue(s string) (time.Time, error) {
	switch s {
	case "", "today":
		return time.Now(), nil
	case "tomorrow":
		return time.Now().AddDate(0, 0, 1), nil
	}
	due, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", s)
	}
	return due, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
