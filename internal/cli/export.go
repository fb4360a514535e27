package cli

import (
	"fmt"
	"os"

	"github.com/existflow/taskdeck/internal/views"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as CSV",
	Long: `Export the task collection as CSV in the fixed column order
Title, Due Date, Status, Priority, Tag.

Examples:
  taskdeck export
  taskdeck export -o tasks.csv`,
	RunE: runExport,
}

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	csv := views.CSV(env.tasks.All())

	if exportOut == "" {
		fmt.Print(csv)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(csv), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported %d tasks to %s\n", env.tasks.Len(), exportOut)
	return nil
}
