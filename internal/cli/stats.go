package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/existflow/taskdeck/internal/model"
	"github.com/existflow/taskdeck/internal/views"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show chart aggregates",
	Long: `Show the dashboard numbers: status and priority histograms, the
per-assignee split, tag distribution, completion trend, burndown and
average cycle time.

Examples:
  taskdeck stats
  taskdeck stats --range month`,
	RunE: runStats,
}

var statsRange string

func init() {
	statsCmd.Flags().StringVarP(&statsRange, "range", "r", "week", "Time range (week, month, year)")
}

func runStats(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	now := time.Now()
	window := views.Window(statsRange)
	cache := views.NewCache(env.tasks)
	tasks := cache.Window(window, now)

	fmt.Printf("\nStats for the last %d days (%d tasks)\n", window.Days(), len(tasks))
	fmt.Println(strings.Repeat("─", 48))

	fmt.Println("\nStatus")
	statusCounts := views.StatusCounts(tasks)
	for _, s := range views.ActiveStatuses {
		fmt.Printf("  %-12s %d\n", s.Label(), statusCounts[s])
	}

	fmt.Println("\nPriority")
	prioCounts := views.PriorityCounts(tasks)
	for _, p := range model.Priorities {
		fmt.Printf("  %-12s %d\n", p, prioCounts[p])
	}

	fmt.Println("\nTeam")
	for _, split := range views.TeamSplit(tasks) {
		fmt.Printf("  %-16s %d done / %d pending\n", split.Assignee, split.Completed, split.Pending)
	}

	fmt.Println("\nTags")
	for tag, n := range views.TagCounts(tasks) {
		fmt.Printf("  %-16s %d\n", tag, n)
	}

	trend := views.Trend(tasks, window, now)
	completed := 0
	for _, p := range trend {
		completed += p.Count
	}
	fmt.Printf("\nCompleted in range: %d\n", completed)

	burn := views.Burndown(tasks, window, now)
	if len(burn) > 0 {
		fmt.Printf("Remaining today:    %d\n", burn[len(burn)-1].Count)
	}

	fmt.Println("\nAvg cycle time (days)")
	cycle := views.CycleTime(tasks)
	for _, p := range model.Priorities {
		fmt.Printf("  %-12s %.1f\n", p, cycle[p])
	}

	fmt.Println()
	return nil
}
