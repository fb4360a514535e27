package cli

import (
	"fmt"

	"github.com/existflow/taskdeck/internal/model"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move [task-id] [status]",
	Short: "Move a task to another column",
	Long: `Move a task to a new status column.

Columns: task-ready, in-progress, needs-review, done, archived-tasks

Examples:
  taskdeck move abc123 in-progress
  taskdeck move abc123 done`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	t, ok := env.tasks.Find(args[0])
	if !ok {
		return fmt.Errorf("task not found: %s", args[0])
	}

	status := model.Status(args[1])
	ok, err = env.tasks.SetStatus(t.ID, status)
	if err != nil && !ok {
		return err
	}
	if err != nil {
		// The move applied in memory; only the persist step failed.
		fmt.Printf("⚠ Moved \"%s\" to %s but the change was not saved: %v\n", t.Title, status, err)
		return nil
	}

	fmt.Printf("→ Moved \"%s\" to %s\n", t.Title, status.Label())
	return nil
}
