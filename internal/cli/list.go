package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/existflow/taskdeck/internal/model"
	"github.com/existflow/taskdeck/internal/task"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks, optionally filtered and sorted.

Examples:
  taskdeck list
  taskdeck list --status in-progress --priority high
  taskdeck list --search release --sort due-date`,
	RunE: runList,
}

var (
	listStatus   string
	listTag      string
	listPriority string
	listSearch   string
	listSort     string
)

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "all", "Filter by status column")
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "all", "Filter by tag")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "all", "Filter by priority")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Free-text search over title and description")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort by due-date, priority or title")
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	tasks := env.tasks.Query(task.Filter{
		Status:   listStatus,
		Tag:      listTag,
		Priority: listPriority,
		Search:   listSearch,
	})
	if listSort != "" {
		tasks = task.Sorted(tasks, task.SortKey(listSort))
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found. Add one with: taskdeck add \"Your task\"")
		return nil
	}

	printTasks(tasks)
	return nil
}

func printTasks(tasks []model.Task) {
	pending := 0
	for _, t := range tasks {
		if t.Status != model.StatusDone && t.Status != model.StatusArchived {
			pending++
		}
	}

	fmt.Printf("\n📋 Tasks (%d pending)\n", pending)
	fmt.Println(strings.Repeat("─", 72))
	for _, t := range tasks {
		printTask(t)
	}
	fmt.Println()
}

func printTask(t model.Task) {
	icon := "[ ]"
	switch t.Status {
	case model.StatusDone:
		icon = "[x]"
	case model.StatusArchived:
		icon = "[a]"
	}

	priority := "  " + string(t.Priority)
	if t.Priority == model.PriorityHigh {
		priority = "▲ high"
	}

	due := t.DueDate.Format("Jan 2")
	if t.IsOverdue(time.Now()) {
		due += " !"
	}

	title := t.Title
	if len(title) > 36 {
		title = title[:33] + "..."
	}

	fmt.Printf("  %s  %-8s  %-36s  %-12s  %-8s  %s\n",
		icon, shortID(t.ID), title, t.Status, due, priority)
}
