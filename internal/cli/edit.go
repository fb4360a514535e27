package cli

import (
	"fmt"

	"github.com/existflow/taskdeck/internal/model"
	"github.com/existflow/taskdeck/internal/task"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit task fields",
	Long: `Update fields of an existing task. Only the provided flags change.

Examples:
  taskdeck edit abc123 --title "New title"
  taskdeck edit abc123 -p low --due 2024-07-01 -a Bob`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle    string
	editDesc     string
	editTag      string
	editPriority string
	editAssignee string
	editDue      string
)

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editDesc, "desc", "d", "", "New description")
	editCmd.Flags().StringVarP(&editTag, "tag", "t", "", "New tag")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (high, medium, low)")
	editCmd.Flags().StringVarP(&editAssignee, "assignee", "a", "", "New assignee")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	t, ok := env.tasks.Find(args[0])
	if !ok {
		return fmt.Errorf("task not found: %s", args[0])
	}

	var patch task.Patch
	if cmd.Flags().Changed("title") {
		patch.Title = &editTitle
	}
	if cmd.Flags().Changed("desc") {
		patch.Description = &editDesc
	}
	if cmd.Flags().Changed("tag") {
		patch.Tag = &editTag
	}
	if cmd.Flags().Changed("priority") {
		p := model.Priority(editPriority)
		if !p.Valid() {
			return fmt.Errorf("invalid priority %q", editPriority)
		}
		patch.Priority = &p
	}
	if cmd.Flags().Changed("assignee") {
		patch.Assignee = &editAssignee
	}
	if cmd.Flags().Changed("due") {
		due, err := parseDue(editDue)
		if err != nil {
			return err
		}
		patch.DueDate = &due
	}

	env.tasks.Update(t.ID, patch)
	fmt.Printf("✎ Updated \"%s\"\n", t.Title)
	return nil
}
