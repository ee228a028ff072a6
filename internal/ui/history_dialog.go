package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/epwatch/epwatch/internal/history"
)

// Timestamp layout for history rows
const historyTimeLayout = "2006-01-02 15:04"

// ShowHistoryDialog shows the recorded watch history, most recent first
func ShowHistoryDialog(window fyne.Window, store *history.Store) {
	if store == nil {
		dialog.ShowInformation("Watch History", "History is not available.", window)
		return
	}

	entries, err := store.Entries()
	if err != nil {
		dialog.ShowError(err, window)
		return
	}

	if len(entries) == 0 {
		dialog.ShowInformation("Watch History", "Nothing watched yet.", window)
		return
	}

	list := widget.NewList(
		func() int { return len(entries) },
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(entries) {
				return
			}
			e := entries[id]
			label := obj.(*widget.Label)
			label.SetText(fmt.Sprintf("Episode %d%s%s",
				e.Episode, MiddleDotSeparator, e.WatchedAt.Local().Format(historyTimeLayout)))
		},
	)

	d := dialog.NewCustom("Watch History", "Close", list, window)
	d.Resize(fyne.NewSize(HistoryDialogWidth, HistoryDialogHeight))
	d.Show()
}
