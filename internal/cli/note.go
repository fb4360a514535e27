package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/taskdeck/internal/model"
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long: `Create, list, search and delete notes.

Examples:
  taskdeck note add "Standup" -c "blocked on review" -t work,daily
  taskdeck note list
  taskdeck note search review
  taskdeck note rm abc123`,
}

var noteAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a note",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes",
	RunE:    runNoteList,
}

var noteSearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteSearch,
}

var noteDeleteCmd = &cobra.Command{
	Use:     "delete [note-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteDelete,
}

var (
	noteContent string
	noteTags    string
)

func init() {
	noteAddCmd.Flags().StringVarP(&noteContent, "content", "c", "", "Note content")
	noteAddCmd.Flags().StringVarP(&noteTags, "tags", "t", "", "Comma-separated tags")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteSearchCmd)
	noteCmd.AddCommand(noteDeleteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	var tags []string
	if noteTags != "" {
		tags = strings.Split(noteTags, ",")
	}

	n, err := env.notes.Create(strings.Join(args, " "), noteContent, tags)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Note added: \"%s\" [%s]\n", n.Title, shortID(n.ID))
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	printNotes(env.notes.All())
	return nil
}

func runNoteSearch(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	printNotes(env.notes.Search(args[0]))
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if !env.notes.Remove(args[0]) {
		return fmt.Errorf("note not found: %s", args[0])
	}
	fmt.Println("🗑️  Note deleted")
	return nil
}

func printNotes(list []model.Note) {
	if len(list) == 0 {
		fmt.Println("No notes found.")
		return
	}
	for _, n := range list {
		tags := ""
		if len(n.Tags) > 0 {
			tags = "  #" + strings.Join(n.Tags, " #")
		}
		fmt.Printf("  %-8s  %-28s  %s%s\n",
			shortID(n.ID), truncate(n.Title, 28), n.LastModified.Format("Jan 2 2006"), tags)
	}
}
