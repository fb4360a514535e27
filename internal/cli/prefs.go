package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change preferences",
	Long: `Show or change the preference flags: darkMode, notifications,
defaultView and autoArchive.

Examples:
  taskdeck prefs
  taskdeck prefs set darkMode true
  taskdeck prefs set defaultView active`,
	RunE: runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set [flag] [value]",
	Short: "Set a preference flag",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrefsSet,
}

func init() {
	prefsCmd.AddCommand(prefsSetCmd)
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	s := env.settings.Load()
	fmt.Printf("  darkMode       %v\n", s.DarkMode)
	fmt.Printf("  notifications  %v\n", s.Notifications)
	fmt.Printf("  defaultView    %s\n", s.DefaultView)
	fmt.Printf("  autoArchive    %v\n", s.AutoArchive)
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	flag, value := args[0], args[1]
	on := value == "true" || value == "on"

	switch flag {
	case "darkMode":
		env.settings.SetDarkMode(on)
	case "notifications":
		env.settings.SetNotifications(on)
	case "autoArchive":
		env.settings.SetAutoArchive(on)
	case "defaultView":
		if err := env.settings.SetDefaultView(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown preference %q", flag)
	}

	fmt.Printf("✓ %s = %s\n", flag, value)
	return nil
}
