package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all data",
	Long: `Delete every task, note, team member and preference from the
store. This cannot be undone.`,
	RunE: runClear,
}

var clearYes bool

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if !clearYes {
		fmt.Print("Clear ALL data? This cannot be undone. [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := env.store.Reset(); err != nil {
		return err
	}
	fmt.Println("All data cleared.")
	return nil
}
