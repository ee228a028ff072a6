package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/epwatch/epwatch/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	libraryDirEntry    *widget.Entry
	playerBinaryEntry  *widget.Entry
	playerArgsEntry    *widget.Entry
	autoAdvanceCheck   *widget.Check
	confirmDeleteCheck *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after the settings were written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.libraryDirEntry = widget.NewEntry()
	sd.libraryDirEntry.SetPlaceHolder("Series directory path")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	libraryDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.libraryDirEntry)

	sd.playerBinaryEntry = widget.NewEntry()
	sd.playerBinaryEntry.SetPlaceHolder("mpv")

	sd.playerArgsEntry = widget.NewEntry()
	sd.playerArgsEntry.SetPlaceHolder(config.DefaultPlayerArgs)

	sd.autoAdvanceCheck = widget.NewCheck("Offer the next episode when playback ends", nil)
	sd.confirmDeleteCheck = widget.NewCheck("Ask before deleting a watched episode", nil)

	form := container.NewVBox(
		widget.NewLabel("Library Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Series Directory:"),
		libraryDirRow,

		widget.NewSeparator(),
		widget.NewLabel("Player Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Player Binary:"),
		sd.playerBinaryEntry,

		widget.NewLabel("Player Arguments:"),
		sd.playerArgsEntry,

		sd.autoAdvanceCheck,
		sd.confirmDeleteCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.libraryDirEntry.SetText(sd.settings.GetLibraryDirectory())
	sd.playerBinaryEntry.SetText(sd.settings.GetPlayerBinary())
	sd.playerArgsEntry.SetText(sd.settings.GetPlayerArgsString())
	sd.autoAdvanceCheck.SetChecked(sd.settings.GetAutoAdvance())
	sd.confirmDeleteCheck.SetChecked(sd.settings.GetConfirmDelete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.libraryDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.libraryDirEntry.Text != "" {
		sd.settings.SetLibraryDirectory(sd.libraryDirEntry.Text)
	}
	sd.settings.SetPlayerBinary(sd.playerBinaryEntry.Text)
	sd.settings.SetPlayerArgs(sd.playerArgsEntry.Text)
	sd.settings.SetAutoAdvance(sd.autoAdvanceCheck.Checked)
	sd.settings.SetConfirmDelete(sd.confirmDeleteCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
