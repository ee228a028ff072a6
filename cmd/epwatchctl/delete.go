package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epwatch/epwatch/internal/library"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the newest already-watched episode file",
	Long: `Deletes the file of the newest episode below the current marker.
The current and unwatched episodes are never touched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		episodes, tracker, err := loadTracker()
		if err != nil {
			return err
		}

		previous, ok := library.LastBefore(episodes, tracker.CurrentNumber())
		if !ok {
			fmt.Println("Nothing to delete; no episode has been watched yet")
			return nil
		}

		if !deleteYes && !confirm(fmt.Sprintf("Delete %s", previous.Filename())) {
			fmt.Println("Aborted")
			return nil
		}

		if err := library.Remove(previous); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", previous.Filename())
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
