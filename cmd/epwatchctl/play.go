package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epwatch/epwatch/internal/model"
	"github.com/epwatch/epwatch/internal/player"
)

var playAdvance bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the media player on the current episode",
	Long: `Launches the configured media player on the current episode and waits
for it to exit. With --advance, the episode is marked watched and the
marker moves to the next one after the player exits cleanly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, tracker, err := loadTracker()
		if err != nil {
			return err
		}
		current := tracker.Current()

		service := player.NewService(cfg.Player.Binary, cfg.Player.Args)
		done := make(chan model.PlaybackStatus, 1)
		service.SetUpdateCallback(func(session *model.PlaybackSession) {
			if session.Status.IsFinished() {
				done <- session.Status
			}
		})

		fmt.Printf("Playing %s (%s)\n", current.DisplayTitle(), current.Filename())
		if _, err := service.Play(current); err != nil {
			return err
		}

		status := <-done
		if status != model.PlaybackStatusFinished {
			return fmt.Errorf("player exited with status %s", status)
		}

		if !playAdvance {
			return nil
		}
		return markWatchedAndAdvance(tracker, current)
	},
}

func init() {
	playCmd.Flags().BoolVar(&playAdvance, "advance", false, "Mark watched and advance after playback")
	rootCmd.AddCommand(playCmd)
}
