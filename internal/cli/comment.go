package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment [task-id] [text...]",
	Short: "Add or list task comments",
	Long: `Append a comment to a task, or list its comments when no text is
given.

Examples:
  taskdeck comment abc123 "waiting on design review"
  taskdeck comment abc123`,
	Args: cobra.MinimumNArgs(1),
	RunE: runComment,
}

func runComment(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	t, ok := env.tasks.Find(args[0])
	if !ok {
		return fmt.Errorf("task not found: %s", args[0])
	}

	if len(args) == 1 {
		if len(t.Comments) == 0 {
			fmt.Printf("No comments on \"%s\"\n", t.Title)
			return nil
		}
		fmt.Printf("Comments for: %s\n", t.Title)
		for i, c := range t.Comments {
			fmt.Printf("  %d. %s\n", i+1, c)
		}
		return nil
	}

	text := strings.TrimSpace(strings.Join(args[1:], " "))
	env.tasks.AppendComment(t.ID, text)
	fmt.Printf("💬 Commented on \"%s\"\n", t.Title)
	return nil
}
