package main

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/epwatch/epwatch/internal/config"
	"github.com/epwatch/epwatch/internal/history"
	"github.com/epwatch/epwatch/internal/platform"
	"github.com/epwatch/epwatch/internal/player"
	"github.com/epwatch/epwatch/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.epwatch.epwatch"
	AppName = "EpWatch"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Str("version", version).Msg("epwatch starting")

	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(AppName + " v" + version)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetLibraryDirectory()); err != nil {
		log.Warn().Err(err).Msg("failed to ensure library dir")
	}

	historyPath := settings.GetHistoryPath()
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(historyPath)); err != nil {
		log.Warn().Err(err).Msg("failed to ensure history dir")
	}

	historyStore, err := history.Open(historyPath)
	if err != nil {
		// History is a convenience; the app still tracks progress without it.
		log.Warn().Err(err).Str("path", historyPath).Msg("watch history unavailable")
		historyStore = nil
	} else {
		defer historyStore.Close()
	}

	rootUI := ui.NewRootUI(myWindow, myApp, func(binary string, args []string) player.Launcher {
		return player.NewService(binary, args)
	}, historyStore)
	defer rootUI.Close()

	myWindow.ShowAndRun()
}
