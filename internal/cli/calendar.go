package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/existflow/taskdeck/internal/task"
	"github.com/existflow/taskdeck/internal/views"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Print the calendar view",
	Long: `Print the month (or week) calendar with due tasks per day.

Examples:
  taskdeck calendar
  taskdeck calendar --date 2024-06-01
  taskdeck calendar --week`,
	RunE: runCalendar,
}

var (
	calDate     string
	calWeek     bool
	calTag      string
	calPriority string
	calSearch   string
)

func init() {
	calendarCmd.Flags().StringVar(&calDate, "date", "", "Anchor date (YYYY-MM-DD, default today)")
	calendarCmd.Flags().BoolVarP(&calWeek, "week", "w", false, "Week view instead of month")
	calendarCmd.Flags().StringVarP(&calTag, "tag", "t", "all", "Filter by tag")
	calendarCmd.Flags().StringVarP(&calPriority, "priority", "p", "all", "Filter by priority")
	calendarCmd.Flags().StringVar(&calSearch, "search", "", "Free-text search")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	now := time.Now()
	anchor := now
	if calDate != "" {
		anchor, err = time.ParseInLocation("2006-01-02", calDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", calDate)
		}
	}

	tasks := env.tasks.Query(task.Filter{Tag: calTag, Priority: calPriority, Search: calSearch})

	var cells []views.Cell
	if calWeek {
		cells = views.WeekGrid(tasks, anchor, now)
		fmt.Printf("\nWeek of %s\n", cells[0].Date.Format("January 2, 2006"))
	} else {
		cells = views.MonthGrid(tasks, anchor.Year(), anchor.Month(), now)
		fmt.Printf("\n%s\n", anchor.Format("January 2006"))
	}

	fmt.Println(strings.Repeat("─", 56))
	for _, c := range cells {
		if !c.InMonth {
			continue
		}
		if len(c.Tasks) == 0 && !c.Today {
			continue
		}

		marker := " "
		if c.Today {
			marker = "*"
		}
		fmt.Printf("%s %s", marker, c.Date.Format("Mon Jan 2"))
		if c.Overdue {
			fmt.Print("  (overdue)")
		}
		fmt.Println()

		for _, t := range c.Preview {
			fmt.Printf("    • %-24s  %-8s  %s\n", truncate(t.Title, 24), t.Priority, t.Tag)
		}
		if c.More > 0 {
			fmt.Printf("    +%d more\n", c.More)
		}
	}
	fmt.Println()
	return nil
}
