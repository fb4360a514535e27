package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage the team roster",
	Long: `Add, list and remove team members. Member task counters are kept
up to date by the board as tasks are assigned and completed.

Examples:
  taskdeck team add Alice --avatar https://example.com/alice.png
  taskdeck team list
  taskdeck team rm Alice`,
}

var teamAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a team member",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamAdd,
}

var teamListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List team members",
	RunE:    runTeamList,
}

var teamRemoveCmd = &cobra.Command{
	Use:     "remove [name]",
	Aliases: []string{"rm"},
	Short:   "Remove a team member",
	Args:    cobra.ExactArgs(1),
	RunE:    runTeamRemove,
}

var teamAvatar string

func init() {
	teamAddCmd.Flags().StringVar(&teamAvatar, "avatar", "", "Avatar URL (required)")

	teamCmd.AddCommand(teamAddCmd)
	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamRemoveCmd)
}

func runTeamAdd(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	m, err := env.team.Add(args[0], teamAvatar)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Added %s (%s)\n", m.Name, m.Role)
	return nil
}

func runTeamList(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	members := env.team.All()
	if len(members) == 0 {
		fmt.Println("No team members. Add one with: taskdeck team add NAME --avatar URL")
		return nil
	}
	for _, m := range members {
		fmt.Printf("  %-16s %-14s %d completed / %d assigned\n",
			m.Name, m.Role, m.TasksCompleted, m.TasksAssigned)
	}
	return nil
}

func runTeamRemove(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if !env.team.Remove(args[0]) {
		return fmt.Errorf("team member not found: %s", args[0])
	}
	fmt.Printf("🗑️  Removed %s\n", args[0])
	return nil
}
