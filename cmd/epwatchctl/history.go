package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epwatch/epwatch/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded watch events, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Entries()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No watch history yet")
			return nil
		}

		for _, entry := range entries {
			fmt.Printf("Episode %d · %s\n", entry.Episode, entry.WatchedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
