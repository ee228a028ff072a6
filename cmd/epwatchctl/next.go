package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/epwatch/epwatch/internal/history"
	"github.com/epwatch/epwatch/internal/model"
	"github.com/epwatch/epwatch/internal/platform"
	"github.com/epwatch/epwatch/internal/progress"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Mark the current episode watched and advance the marker",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, tracker, err := loadTracker()
		if err != nil {
			return err
		}
		return markWatchedAndAdvance(tracker, tracker.Current())
	},
}

var setCmd = &cobra.Command{
	Use:   "set NUMBER",
	Short: "Move the marker to a specific episode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid episode number %q", args[0])
		}

		_, tracker, err := loadTracker()
		if err != nil {
			return err
		}

		if err := tracker.Set(number); err != nil {
			return err
		}
		fmt.Printf("Current episode is now %s\n", tracker.Current().DisplayTitle())
		return nil
	},
}

// markWatchedAndAdvance records watched in history, moves the marker and
// reports the new position. At the last episode the marker saturates.
func markWatchedAndAdvance(tracker *progress.Tracker, watched model.Episode) error {
	recordHistory(watched)

	next, err := tracker.Advance()
	if err != nil {
		return err
	}

	if next.Number == watched.Number {
		fmt.Printf("%s was the last episode; marker stays put\n", watched.DisplayTitle())
		return nil
	}
	fmt.Printf("Watched %s, next up %s\n", watched.DisplayTitle(), next.DisplayTitle())
	return nil
}

// recordHistory best-effort logs a watch event; history failures never block
// marker updates.
func recordHistory(ep model.Episode) {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(cfg.HistoryDB)); err != nil {
		log.Warn().Err(err).Msg("History database unavailable")
		return
	}

	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		log.Warn().Err(err).Msg("History database unavailable")
		return
	}
	defer store.Close()

	if err := store.RecordWatched(ep); err != nil {
		log.Warn().Err(err).Int("episode", ep.Number).Msg("Failed to record watch event")
	}
}

func init() {
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(setCmd)
}
