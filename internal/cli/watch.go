package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/existflow/taskdeck/internal/notify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for due tasks",
	Long: `Run the due-date poller in the foreground: tasks due within the
next hour are reported every 5 minutes, tasks due today every hour.
Requires the notifications preference to be on. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if !env.settings.Load().Notifications {
		return fmt.Errorf("notifications are off; enable with: taskdeck prefs set notifications true")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	n := notify.New(env.tasks, func(title, message string) {
		fmt.Printf("🔔 %s: %s\n", title, message)
	})

	fmt.Println("Watching for due tasks. Ctrl-C to stop.")
	n.Run(ctx)
	return nil
}
