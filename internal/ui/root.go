package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/epwatch/epwatch/internal/config"
	"github.com/epwatch/epwatch/internal/history"
	"github.com/epwatch/epwatch/internal/library"
	"github.com/epwatch/epwatch/internal/model"
	"github.com/epwatch/epwatch/internal/platform"
	"github.com/epwatch/epwatch/internal/player"
	"github.com/epwatch/epwatch/internal/progress"
)

// LauncherFactory builds a playback launcher for the configured player.
// Injected so tests can substitute a fake player.
type LauncherFactory func(binary string, args []string) player.Launcher

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings

	newLauncher LauncherFactory
	launcher    player.Launcher
	historyView *history.Store

	tracker  *progress.Tracker
	episodes []model.Episode
	watcher  *library.Watcher

	currentLabel *widget.Label
	episodeList  *widget.List
	playBtn      *widget.Button
	nextBtn      *widget.Button
	deleteBtn    *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, factory LauncherFactory, historyStore *history.Store) *RootUI {
	settings := config.NewSettings(app)

	ui := &RootUI{
		window:      window,
		settings:    settings,
		newLauncher: factory,
		historyView: historyStore,
	}

	ui.rebuildLauncher()
	ui.setupUI()
	ui.rescan()
	ui.startWatcher()

	return ui
}

// rebuildLauncher creates a launcher from the current player settings
func (ui *RootUI) rebuildLauncher() {
	if ui.launcher != nil {
		if err := ui.launcher.Stop(); err != nil {
			log.Warn().Err(err).Msg("failed to stop playback before launcher rebuild")
		}
	}

	ui.launcher = ui.newLauncher(ui.settings.GetPlayerBinary(), ui.settings.GetPlayerArgs())
	ui.launcher.SetUpdateCallback(ui.onPlaybackUpdate)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.currentLabel = widget.NewLabel("")
	ui.currentLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.playBtn = widget.NewButton("Play Current Episode", ui.onPlayCurrent)
	ui.playBtn.Importance = widget.HighImportance
	ui.nextBtn = widget.NewButton("Mark Watched & Next", ui.onMarkWatchedNext)
	ui.deleteBtn = widget.NewButton(IconDelete+" Delete Previous Episode", ui.onDeletePrevious)

	ui.episodeList = widget.NewList(
		func() int { return len(ui.episodes) },
		func() fyne.CanvasObject { return ui.createEpisodeItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateEpisodeItem(id, obj) },
	)

	topPanel := container.NewVBox(ui.currentLabel, container.NewHBox(ui.playBtn, ui.nextBtn, ui.deleteBtn))

	content := container.NewBorder(
		topPanel, nil, nil, nil,
		ui.episodeList,
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(IconSettings+" Settings", ui.onShowSettings)
	historyItem := fyne.NewMenuItem("Watch History", ui.onShowHistory)
	rescanItem := fyne.NewMenuItem("Rescan Library", func() {
		ui.rescan()
	})

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("Library", rescanItem, historyItem, settingsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// createEpisodeItem creates a new episode row widget
func (ui *RootUI) createEpisodeItem() fyne.CanvasObject {
	row := NewEpisodeRow()
	row.SetCallbacks(ui.onPlayEpisode, ui.onRevealEpisode)
	return row
}

// updateEpisodeItem updates an episode row with current data
func (ui *RootUI) updateEpisodeItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.episodes) {
		return
	}

	row, ok := item.(*EpisodeRow)
	if !ok {
		return
	}

	ep := ui.episodes[id]
	status := model.EpisodeStatusUnwatched
	if ui.tracker != nil {
		status = ep.StatusAgainst(ui.tracker.CurrentNumber())
	}

	row.SetCallbacks(ui.onPlayEpisode, ui.onRevealEpisode)
	row.UpdateEpisode(ep, status)
}

// rescan reloads the episode list from disk and re-normalizes the marker
func (ui *RootUI) rescan() {
	dir := ui.settings.GetLibraryDirectory()

	episodes, err := library.Scan(dir)
	if err != nil {
		ui.episodes = nil
		ui.refreshList()
		if errors.Is(err, library.ErrNoEpisodes) {
			ui.currentLabel.SetText("No episodes found in " + dir)
		} else {
			ui.currentLabel.SetText("Library unavailable: " + dir)
		}
		ui.setActionsEnabled(false)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.episodes = episodes

	if ui.tracker == nil {
		tracker, err := progress.Load(ui.settings.ProgressPath(), episodes)
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.tracker = tracker
	} else if err := ui.tracker.Refresh(episodes); err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	ui.setActionsEnabled(true)
	ui.refreshCurrent()
	ui.refreshList()
}

// startWatcher begins watching the library directory for external changes
func (ui *RootUI) startWatcher() {
	dir := ui.settings.GetLibraryDirectory()

	watcher, err := library.NewWatcher(dir, func() {
		fyne.Do(func() { ui.rescan() })
	})
	if err != nil {
		// The watcher is a convenience; the Rescan menu item still works.
		log.Warn().Err(err).Str("dir", dir).Msg("library watcher unavailable")
		return
	}
	ui.watcher = watcher
}

// Close releases background resources. Called when the window closes.
func (ui *RootUI) Close() {
	if ui.watcher != nil {
		ui.watcher.Close()
	}
	if ui.launcher != nil {
		if err := ui.launcher.Stop(); err != nil {
			log.Warn().Err(err).Msg("failed to stop playback on close")
		}
	}
}

// setActionsEnabled toggles the playback action buttons
func (ui *RootUI) setActionsEnabled(enabled bool) {
	if enabled {
		ui.playBtn.Enable()
		ui.nextBtn.Enable()
		ui.deleteBtn.Enable()
	} else {
		ui.playBtn.Disable()
		ui.nextBtn.Disable()
		ui.deleteBtn.Disable()
	}
}

// refreshCurrent updates the current-episode label
func (ui *RootUI) refreshCurrent() {
	if ui.tracker == nil {
		ui.currentLabel.SetText("")
		return
	}
	ui.currentLabel.SetText(fmt.Sprintf("Current Episode: %d", ui.tracker.CurrentNumber()))
}

// refreshList refreshes the episode list widget
func (ui *RootUI) refreshList() {
	if ui.episodeList != nil {
		ui.episodeList.Refresh()
	}
}

// onPlayCurrent plays the episode the marker points at
func (ui *RootUI) onPlayCurrent() {
	if ui.tracker == nil {
		return
	}
	ui.playEpisode(ui.tracker.Current())
}

// onPlayEpisode plays a specific episode from the list without moving the marker
func (ui *RootUI) onPlayEpisode(ep model.Episode) {
	ui.playEpisode(ep)
}

// playEpisode launches the external player; progress stays unmodified on failure
func (ui *RootUI) playEpisode(ep model.Episode) {
	_, err := ui.launcher.Play(ep)
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			dialog.ShowError(fmt.Errorf("media player %q not found, configure it in Settings",
				ui.settings.GetPlayerBinary()), ui.window)
			return
		}
		dialog.ShowError(err, ui.window)
	}
}

// onPlaybackUpdate handles session updates from the playback service.
// Runs on the launcher goroutine.
func (ui *RootUI) onPlaybackUpdate(session *model.PlaybackSession) {
	if session.Status != model.PlaybackStatusFinished {
		return
	}
	if !ui.settings.GetAutoAdvance() {
		return
	}

	fyne.Do(func() {
		dialog.ShowConfirm(
			"Episode Finished",
			"Would you like to proceed to the next episode?",
			func(confirmed bool) {
				if confirmed {
					ui.onMarkWatchedNext()
				}
			},
			ui.window,
		)
	})
}

// onMarkWatchedNext records the current episode as watched, advances the
// marker, and starts playback of the next episode
func (ui *RootUI) onMarkWatchedNext() {
	if ui.tracker == nil {
		return
	}

	current := ui.tracker.Current()

	next, err := ui.tracker.Advance()
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	if next.Number == current.Number {
		dialog.ShowInformation("Complete", "You've reached the last episode!", ui.window)
		return
	}

	if ui.historyView != nil {
		if err := ui.historyView.RecordWatched(current); err != nil {
			log.Warn().Err(err).Int("episode", current.Number).Msg("failed to record watch history")
		}
	}

	ui.refreshCurrent()
	ui.refreshList()
	ui.playEpisode(next)
}

// onDeletePrevious deletes the newest episode below the marker after
// confirmation; unwatched episodes are never deleted
func (ui *RootUI) onDeletePrevious() {
	if ui.tracker == nil {
		return
	}

	prev, ok := library.LastBefore(ui.episodes, ui.tracker.CurrentNumber())
	if !ok {
		dialog.ShowInformation("Info", "No previous episode to delete.", ui.window)
		return
	}

	if !ui.settings.GetConfirmDelete() {
		ui.deleteEpisode(prev)
		return
	}

	dialog.ShowConfirm(
		"Confirm Deletion",
		fmt.Sprintf("Delete %s?", prev.Filename()),
		func(confirmed bool) {
			if confirmed {
				ui.deleteEpisode(prev)
			}
		},
		ui.window,
	)
}

// deleteEpisode removes the file and refreshes the episode list
func (ui *RootUI) deleteEpisode(ep model.Episode) {
	if err := library.Remove(ep); err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	ui.rescan()
	dialog.ShowInformation("Success", "Previous episode deleted.", ui.window)
}

// onRevealEpisode shows the episode file in the system file manager
func (ui *RootUI) onRevealEpisode(ep model.Episode) {
	if err := platform.RevealInFileManager(ep.Path); err != nil {
		dialog.ShowError(fmt.Errorf("failed to reveal %s: %w", ep.Filename(), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		// Player or library changes apply immediately.
		ui.rebuildLauncher()
		ui.tracker = nil
		if ui.watcher != nil {
			ui.watcher.Close()
			ui.watcher = nil
		}
		ui.rescan()
		ui.startWatcher()
	})
}

// onShowHistory shows the watch history dialog
func (ui *RootUI) onShowHistory() {
	ShowHistoryDialog(ui.window, ui.historyView)
}
