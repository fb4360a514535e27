package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track time on tasks",
	Long: `Start or stop a time-tracking session for a task. Stopping adds
the elapsed time to the task's total.

Examples:
  taskdeck track start abc123
  taskdeck track stop abc123
  taskdeck track status`,
}

var trackStartCmd = &cobra.Command{
	Use:   "start [task-id]",
	Short: "Start tracking a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackStart,
}

var trackStopCmd = &cobra.Command{
	Use:   "stop [task-id]",
	Short: "Stop tracking a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackStop,
}

var trackStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show active tracking sessions",
	RunE:  runTrackStatus,
}

func init() {
	trackCmd.AddCommand(trackStartCmd)
	trackCmd.AddCommand(trackStopCmd)
	trackCmd.AddCommand(trackStatusCmd)
}

func runTrackStart(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	t, ok := env.tasks.Find(args[0])
	if !ok {
		return fmt.Errorf("task not found: %s", args[0])
	}
	if err := env.tracker.Start(t.ID); err != nil {
		return err
	}
	fmt.Printf("⏱  Tracking \"%s\"\n", t.Title)
	return nil
}

func runTrackStop(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	t, ok := env.tasks.Find(args[0])
	if !ok {
		return fmt.Errorf("task not found: %s", args[0])
	}

	elapsed := env.tracker.Stop(t.ID)
	if elapsed == 0 {
		fmt.Printf("No active session for \"%s\"\n", t.Title)
		return nil
	}

	t, _ = env.tasks.Get(t.ID)
	fmt.Printf("⏱  Stopped \"%s\": +%s (total %s)\n",
		t.Title, elapsed.Round(time.Second), t.TimeSpent.Round(time.Second))
	return nil
}

func runTrackStatus(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	ids := env.tracker.ActiveIDs()
	if len(ids) == 0 {
		fmt.Println("No active tracking sessions.")
		return nil
	}
	for _, id := range ids {
		start, _ := env.tracker.Active(id)
		title := id
		if t, ok := env.tasks.Get(id); ok {
			title = t.Title
		}
		fmt.Printf("  %-28s since %s\n", truncate(title, 28), start.Format("15:04:05"))
	}
	return nil
}
