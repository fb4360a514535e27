package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task by its ID. Deletion is permanent; there is no
soft-delete.

Examples:
  taskdeck delete abc123
  taskdeck rm abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	t, ok := env.tasks.Find(args[0])
	if !ok {
		return fmt.Errorf("task not found: %s", args[0])
	}

	if env.cfg.ConfirmDelete {
		fmt.Printf("About to delete: \"%s\" (ID: %s)\n", t.Title, t.ID)
		fmt.Print("Are you sure? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	env.tasks.Remove(t.ID)
	fmt.Printf("🗑️  Deleted: \"%s\"\n", t.Title)
	return nil
}
