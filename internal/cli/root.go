package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/taskdeck/internal/config"
	"github.com/existflow/taskdeck/internal/logger"
	"github.com/existflow/taskdeck/internal/tui"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "TaskDeck - local kanban board, calendar and notes",
	Long: `TaskDeck is a local task manager: a kanban board with calendar view,
notes, a team roster and chart aggregates, all stored on this machine.

Run 'taskdeck' without arguments to launch the interactive board.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config from file (or defaults if not exists)
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}

		logConfig := logger.Config{
			Level:    logger.ParseLevel(cfg.LogLevel),
			FilePath: cfg.LogFile,
			MaxSize:  10 * 1024 * 1024, // 10MB
			Console:  cfg.LogConsole,
		}
		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("TaskDeck started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			logger.Error("Failed to open store", logger.F("error", err))
			return err
		}
		defer env.Close()

		logger.Info("Launching TUI")
		m := tui.NewModel(env.tasks, env.settings)
		p := tea.NewProgram(m, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}

		logger.Info("TUI exited normally")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("TaskDeck exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(clearCmd)
}
