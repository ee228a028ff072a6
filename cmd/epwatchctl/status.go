package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current episode and library overview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		episodes, tracker, err := loadTracker()
		if err != nil {
			return err
		}

		current := tracker.Current()
		fmt.Printf("Library: %s (%d episodes)\n", cfg.Library, len(episodes))
		fmt.Printf("Current: %s (%s)\n\n", current.DisplayTitle(), current.Filename())

		for _, ep := range episodes {
			fmt.Printf(" [%s] %s\n", statusMark(ep, tracker.CurrentNumber()), ep.Filename())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
