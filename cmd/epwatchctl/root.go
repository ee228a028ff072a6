package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/epwatch/epwatch/internal/library"
	"github.com/epwatch/epwatch/internal/model"
	"github.com/epwatch/epwatch/internal/progress"
)

var version = "dev"

var (
	configPath string
	libraryDir string
	playerBin  string
	verbose    bool

	cfg Config
)

var rootCmd = &cobra.Command{
	Use:   "epwatchctl",
	Short: "Track and resume a locally stored video series",
	Long: `epwatchctl - headless companion to the EpWatch desktop app

Tracks which episode of a numerically named video series was watched
last, launches the external media player to resume, and deletes
already-watched files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}

		path := configPath
		if path == "" {
			defaultPath, err := DefaultConfigPath()
			if err != nil {
				return err
			}
			path = defaultPath
		}

		loaded, err := LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded

		// Flags override file values.
		if libraryDir != "" {
			cfg.Library = libraryDir
			cfg.ProgressFile = ""
			cfg = applyDefaults(cfg)
		}
		if playerBin != "" {
			cfg.Player.Binary = playerBin
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&libraryDir, "library", "", "Series directory")
	rootCmd.PersistentFlags().StringVar(&playerBin, "player", "", "Media player binary")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("epwatchctl {{.Version}}\n")
}

// loadTracker scans the library and loads the progress marker against it.
func loadTracker() ([]model.Episode, *progress.Tracker, error) {
	episodes, err := library.Scan(cfg.Library)
	if err != nil {
		return nil, nil, err
	}

	tracker, err := progress.Load(cfg.ProgressFile, episodes)
	if err != nil {
		return nil, nil, err
	}
	return episodes, tracker, nil
}

// statusMark returns the one-character list marker for an episode.
func statusMark(ep model.Episode, current int) string {
	switch ep.StatusAgainst(current) {
	case model.EpisodeStatusWatched:
		return "x"
	case model.EpisodeStatusCurrent:
		return ">"
	default:
		return " "
	}
}

// confirm asks a yes/no question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	return answer == "y" || answer == "Y" || answer == "yes"
}
